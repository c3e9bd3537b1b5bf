package shader

// SceneVertexSource is the vertex stage for the tableau scene program. It
// transforms positions by the model/view/projection chain and forwards the
// world-space position, normal, and UV to the fragment stage.
const SceneVertexSource = `#version 330 core
layout (location = 0) in vec3 inVertex;
layout (location = 1) in vec3 inNormal;
layout (location = 2) in vec2 inUV;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main()
{
    fragPos = vec3(model * vec4(inVertex, 1.0));
    fragNormal = mat3(transpose(inverse(model))) * inNormal;
    fragUV = inUV;
    gl_Position = projection * view * model * vec4(inVertex, 1.0);
}
`

// SceneFragmentSource is the fragment stage for the tableau scene program.
// Surface color comes from objectColor or from objectTexture (UVs scaled by
// UVscale) depending on bUseTexture. When bUseLighting is set, the base color
// is shaded by up to four analytic light sources against the current material.
const SceneFragmentSource = `#version 330 core
#define TOTAL_LIGHTS 4

struct Material
{
    vec3 ambientColor;
    float ambientStrength;
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct LightSource
{
    vec3 position;
    vec3 ambientColor;
    vec3 diffuseColor;
    vec3 specularColor;
    float focalStrength;
    float specularIntensity;
};

in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outFragColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[TOTAL_LIGHTS];

vec3 shadeLight(LightSource light, vec3 baseColor, vec3 normal, vec3 viewDir)
{
    vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;

    vec3 lightDir = normalize(light.position - fragPos);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 diffuse = diff * light.diffuseColor * material.diffuseColor;

    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(light.focalStrength * material.shininess, 1.0));
    vec3 specular = light.specularIntensity * spec * light.specularColor * material.specularColor;

    return (ambient + diffuse) * baseColor + specular;
}

void main()
{
    vec4 baseColor = bUseTexture
        ? texture(objectTexture, fragUV * UVscale)
        : objectColor;

    if (!bUseLighting)
    {
        outFragColor = baseColor;
        return;
    }

    vec3 normal = normalize(fragNormal);
    vec3 viewDir = normalize(viewPosition - fragPos);

    vec3 shaded = vec3(0.0);
    for (int i = 0; i < TOTAL_LIGHTS; i++)
    {
        shaded += shadeLight(lightSources[i], baseColor.rgb, normal, viewDir);
    }
    outFragColor = vec4(shaded, baseColor.a);
}
`
