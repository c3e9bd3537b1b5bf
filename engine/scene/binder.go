package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/tableau-go/common"
)

// Uniform names of the scene shader's object-level contract. The Manager is
// the sole writer of these names.
const (
	uniformModel       = "model"
	uniformObjectColor = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"
)

func (m *manager) SetTransformations(scale [3]float32, rxDeg, ryDeg, rzDeg float32, position [3]float32) {
	if m.shader == nil {
		return
	}

	// M = T · Rx · Ry · Rz · S: scale first in object space, then the Z, Y,
	// and X rotations with X outermost, then the translation.
	model := mgl32.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rxDeg))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(ryDeg))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rzDeg))).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))

	m.shader.SetMat4Value(uniformModel, model)
}

func (m *manager) SetShaderColor(r, g, b, a float32) {
	if m.shader == nil {
		return
	}
	m.shader.SetIntValue(uniformUseTexture, 0)
	m.shader.SetVec4Value(uniformObjectColor, r, g, b, a)
}

func (m *manager) SetShaderTexture(tag string) {
	if m.shader == nil {
		return
	}
	m.shader.SetIntValue(uniformUseTexture, 1)
	m.shader.SetSampler2DValue(uniformTexture, int32(m.textures.ResolveUnit(tag)))
}

func (m *manager) SetTextureUVScale(u, v float32) {
	if m.shader == nil {
		return
	}
	m.shader.SetVec2Value(uniformUVScale, u, v)
}

func (m *manager) SetShaderMaterial(tag string) {
	if m.shader == nil || m.materials.Count() == 0 {
		return
	}
	material, found := m.materials.Resolve(tag)
	if !found {
		return
	}
	m.shader.SetVec3Value("material.ambientColor", material.AmbientColor[0], material.AmbientColor[1], material.AmbientColor[2])
	m.shader.SetFloatValue("material.ambientStrength", material.AmbientStrength)
	m.shader.SetVec3Value("material.diffuseColor", material.DiffuseColor[0], material.DiffuseColor[1], material.DiffuseColor[2])
	m.shader.SetVec3Value("material.specularColor", material.SpecularColor[0], material.SpecularColor[1], material.SpecularColor[2])
	m.shader.SetFloatValue("material.shininess", material.Shininess)
}

func (m *manager) SetLightSource(index int, src common.LightSource) {
	if !m.lights.Set(index, src) {
		return
	}
	if m.shader == nil {
		return
	}
	prefix := fmt.Sprintf("lightSources[%d]", index)
	m.shader.SetVec3Value(prefix+".position", src.Position[0], src.Position[1], src.Position[2])
	m.shader.SetVec3Value(prefix+".ambientColor", src.AmbientColor[0], src.AmbientColor[1], src.AmbientColor[2])
	m.shader.SetVec3Value(prefix+".diffuseColor", src.DiffuseColor[0], src.DiffuseColor[1], src.DiffuseColor[2])
	m.shader.SetVec3Value(prefix+".specularColor", src.SpecularColor[0], src.SpecularColor[1], src.SpecularColor[2])
	m.shader.SetFloatValue(prefix+".focalStrength", src.FocalStrength)
	m.shader.SetFloatValue(prefix+".specularIntensity", src.SpecularIntensity)
}
