// 指示: miu200521358
package model

import "fmt"

// Scene は変換対象のアーマチュアとメッシュをまとめた文書を表す。
type Scene struct {
	Armatures []*Skeleton
	Meshes    []*Mesh
}

// NewScene は空のシーンを生成する。
func NewScene() *Scene {
	return &Scene{}
}

// Armature は指定名のアーマチュアを返す。
func (s *Scene) Armature(name string) (*Skeleton, error) {
	for _, armature := range s.Armatures {
		if armature.Name == name {
			return armature, nil
		}
	}
	return nil, fmt.Errorf("アーマチュアが見つかりません: %s", name)
}

// AddArmature はアーマチュアを追加する。同名がある場合は置き換える。
func (s *Scene) AddArmature(armature *Skeleton) {
	for i, existing := range s.Armatures {
		if existing.Name == armature.Name {
			s.Armatures[i] = armature
			return
		}
	}
	s.Armatures = append(s.Armatures, armature)
}

// Mesh は指定名のメッシュを返す。
func (s *Scene) Mesh(name string) (*Mesh, error) {
	for _, mesh := range s.Meshes {
		if mesh.Name == name {
			return mesh, nil
		}
	}
	return nil, fmt.Errorf("メッシュが見つかりません: %s", name)
}

// ChildMeshes は指定アーマチュアを親に持つメッシュを登録順で返す。
func (s *Scene) ChildMeshes(armatureName string) []*Mesh {
	meshes := make([]*Mesh, 0)
	for _, mesh := range s.Meshes {
		if mesh.Parent == armatureName {
			meshes = append(meshes, mesh)
		}
	}
	return meshes
}
