// 指示: miu200521358
package io_scene

import (
	"fmt"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// sceneDocument はシーン文書のルートを表す。
type sceneDocument struct {
	Armatures []armatureDocument `yaml:"armatures" json:"armatures"`
	Meshes    []meshDocument     `yaml:"meshes,omitempty" json:"meshes,omitempty"`
}

type armatureDocument struct {
	Name  string         `yaml:"name" json:"name"`
	Bones []boneDocument `yaml:"bones" json:"bones"`
}

type boneDocument struct {
	Name        string               `yaml:"name" json:"name"`
	Head        [3]float64           `yaml:"head,flow" json:"head"`
	Tail        [3]float64           `yaml:"tail,flow" json:"tail"`
	Roll        float64              `yaml:"roll,omitempty" json:"roll,omitempty"`
	Parent      string               `yaml:"parent,omitempty" json:"parent,omitempty"`
	Connected   bool                 `yaml:"connected,omitempty" json:"connected,omitempty"`
	Deform      *bool                `yaml:"deform,omitempty" json:"deform,omitempty"`
	Collection  string               `yaml:"collection,omitempty" json:"collection,omitempty"`
	Constraints []constraintDocument `yaml:"constraints,omitempty" json:"constraints,omitempty"`
}

type constraintDocument struct {
	Name      string         `yaml:"name" json:"name"`
	Type      string         `yaml:"type" json:"type"`
	Target    string         `yaml:"target,omitempty" json:"target,omitempty"`
	Subtarget string         `yaml:"subtarget,omitempty" json:"subtarget,omitempty"`
	Limit     *limitDocument `yaml:"limit,omitempty" json:"limit,omitempty"`
}

type limitDocument struct {
	X                 axisLimitDocument `yaml:"x" json:"x"`
	Y                 axisLimitDocument `yaml:"y" json:"y"`
	Z                 axisLimitDocument `yaml:"z" json:"z"`
	EulerOrder        string            `yaml:"euler_order,omitempty" json:"euler_order,omitempty"`
	UseTransformLimit bool              `yaml:"use_transform_limit,omitempty" json:"use_transform_limit,omitempty"`
	OwnerSpace        string            `yaml:"owner_space,omitempty" json:"owner_space,omitempty"`
}

type axisLimitDocument struct {
	Use bool    `yaml:"use" json:"use"`
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

type meshDocument struct {
	Name         string                `yaml:"name" json:"name"`
	Parent       string                `yaml:"parent,omitempty" json:"parent,omitempty"`
	VertexCount  int                   `yaml:"vertex_count" json:"vertex_count"`
	Vertices     [][3]float64          `yaml:"vertices,omitempty,flow" json:"vertices,omitempty"`
	Selected     []int                 `yaml:"selected,omitempty,flow" json:"selected,omitempty"`
	VertexGroups []vertexGroupDocument `yaml:"vertex_groups,omitempty" json:"vertex_groups,omitempty"`
	ShapeKeys    []shapeKeyDocument    `yaml:"shape_keys,omitempty" json:"shape_keys,omitempty"`
	Modifiers    []modifierDocument    `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
}

type vertexGroupDocument struct {
	Name    string          `yaml:"name" json:"name"`
	Lock    bool            `yaml:"lock,omitempty" json:"lock,omitempty"`
	Weights map[int]float64 `yaml:"weights,omitempty" json:"weights,omitempty"`
}

type shapeKeyDocument struct {
	Name   string          `yaml:"name" json:"name"`
	Value  float64         `yaml:"value,omitempty" json:"value,omitempty"`
	Driver *driverDocument `yaml:"driver,omitempty" json:"driver,omitempty"`
}

type driverDocument struct {
	DataPath   string             `yaml:"data_path" json:"data_path"`
	Expression string             `yaml:"expression" json:"expression"`
	Variables  []variableDocument `yaml:"variables,omitempty" json:"variables,omitempty"`
}

type variableDocument struct {
	Name    string           `yaml:"name" json:"name"`
	Type    string           `yaml:"type" json:"type"`
	Targets []targetDocument `yaml:"targets" json:"targets"`
}

type targetDocument struct {
	ID             string `yaml:"id,omitempty" json:"id,omitempty"`
	BoneTarget     string `yaml:"bone_target,omitempty" json:"bone_target,omitempty"`
	DataPath       string `yaml:"data_path,omitempty" json:"data_path,omitempty"`
	TransformType  string `yaml:"transform_type,omitempty" json:"transform_type,omitempty"`
	TransformSpace string `yaml:"transform_space,omitempty" json:"transform_space,omitempty"`
	RotationMode   string `yaml:"rotation_mode,omitempty" json:"rotation_mode,omitempty"`
}

type modifierDocument struct {
	Name         string `yaml:"name" json:"name"`
	Type         string `yaml:"type" json:"type"`
	Object       string `yaml:"object,omitempty" json:"object,omitempty"`
	VertexGroupA string `yaml:"vertex_group_a,omitempty" json:"vertex_group_a,omitempty"`
	VertexGroupB string `yaml:"vertex_group_b,omitempty" json:"vertex_group_b,omitempty"`
	MixMode      string `yaml:"mix_mode,omitempty" json:"mix_mode,omitempty"`
	MixSet       string `yaml:"mix_set,omitempty" json:"mix_set,omitempty"`
}

// toScene は文書をシーンへ変換する。ボーンは親が先に現れる順で記述されている必要がある。
func (d *sceneDocument) toScene() (*model.Scene, error) {
	scene := model.NewScene()
	for _, armatureDoc := range d.Armatures {
		skeleton := model.NewSkeleton(armatureDoc.Name)
		for _, boneDoc := range armatureDoc.Bones {
			bone, err := boneDoc.toBone()
			if err == nil {
				err = skeleton.Add(bone)
			}
			if err != nil {
				return nil, fmt.Errorf("アーマチュア %s の読み込みに失敗しました: %w", armatureDoc.Name, err)
			}
		}
		scene.Armatures = append(scene.Armatures, skeleton)
	}
	for _, meshDoc := range d.Meshes {
		mesh, err := meshDoc.toMesh()
		if err != nil {
			return nil, err
		}
		scene.Meshes = append(scene.Meshes, mesh)
	}
	return scene, nil
}

func (d boneDocument) toBone() (*model.Bone, error) {
	bone := model.NewBone(d.Name, vec3(d.Head), vec3(d.Tail), d.Roll)
	bone.Parent = d.Parent
	bone.Connected = d.Connected
	if d.Deform != nil {
		bone.Deform = *d.Deform
	}
	bone.Collection = d.Collection
	for _, constraintDoc := range d.Constraints {
		constraint := &model.Constraint{
			Name:      constraintDoc.Name,
			Type:      model.ConstraintType(constraintDoc.Type),
			Target:    constraintDoc.Target,
			Subtarget: constraintDoc.Subtarget,
		}
		limitDoc := constraintDoc.Limit
		if limitDoc == nil && constraint.Type == model.CONSTRAINT_LIMIT_ROTATION {
			return nil, fmt.Errorf("%s/%s: %w", d.Name, constraintDoc.Name, model.ErrRotationLimitMissing)
		}
		if limitDoc != nil {
			constraint.Limit = &model.RotationLimit{
				Axes: [3]model.AxisLimit{
					{Use: limitDoc.X.Use, Min: limitDoc.X.Min, Max: limitDoc.X.Max},
					{Use: limitDoc.Y.Use, Min: limitDoc.Y.Min, Max: limitDoc.Y.Max},
					{Use: limitDoc.Z.Use, Min: limitDoc.Z.Min, Max: limitDoc.Z.Max},
				},
				EulerOrder:        model.EulerOrder(valueOr(limitDoc.EulerOrder, string(model.EULER_AUTO))),
				UseTransformLimit: limitDoc.UseTransformLimit,
				OwnerSpace:        model.Space(valueOr(limitDoc.OwnerSpace, string(model.SPACE_WORLD))),
			}
		}
		bone.Constraints = append(bone.Constraints, constraint)
	}
	return bone, nil
}

func (d meshDocument) toMesh() (*model.Mesh, error) {
	mesh := model.NewMesh(d.Name, d.VertexCount)
	mesh.Parent = d.Parent
	if len(d.Vertices) > 0 {
		if d.VertexCount != 0 && d.VertexCount != len(d.Vertices) {
			return nil, fmt.Errorf("メッシュ %s の頂点数が一致しません: vertex_count=%d vertices=%d", d.Name, d.VertexCount, len(d.Vertices))
		}
		vertices := make([]r3.Vec, 0, len(d.Vertices))
		for _, position := range d.Vertices {
			vertices = append(vertices, vec3(position))
		}
		mesh.SetVertices(vertices)
	}
	for _, index := range d.Selected {
		if err := mesh.SetSelected(index, true); err != nil {
			return nil, fmt.Errorf("メッシュ %s の読み込みに失敗しました: %w", d.Name, err)
		}
	}
	for _, groupDoc := range d.VertexGroups {
		group := model.NewVertexGroup(groupDoc.Name)
		group.LockWeight = groupDoc.Lock
		for index, weight := range groupDoc.Weights {
			group.Weights[index] = weight
		}
		if err := mesh.AddVertexGroup(group); err != nil {
			return nil, fmt.Errorf("メッシュ %s の読み込みに失敗しました: %w", d.Name, err)
		}
	}
	for _, keyDoc := range d.ShapeKeys {
		shapeKey := &model.ShapeKey{Name: keyDoc.Name, Value: keyDoc.Value}
		if driverDoc := keyDoc.Driver; driverDoc != nil {
			driver := &model.Driver{DataPath: driverDoc.DataPath, Expression: driverDoc.Expression}
			for _, variableDoc := range driverDoc.Variables {
				if len(variableDoc.Targets) > 2 {
					return nil, fmt.Errorf("ドライバー変数 %s のターゲットは2件までです: %s", variableDoc.Name, driverDoc.DataPath)
				}
				variable := &model.DriverVariable{Name: variableDoc.Name, Type: model.VariableType(variableDoc.Type)}
				for i, targetDoc := range variableDoc.Targets {
					variable.Targets[i] = model.DriverTarget{
						ID:             targetDoc.ID,
						BoneTarget:     targetDoc.BoneTarget,
						DataPath:       targetDoc.DataPath,
						TransformType:  model.TransformType(targetDoc.TransformType),
						TransformSpace: model.TransformSpace(targetDoc.TransformSpace),
						RotationMode:   targetDoc.RotationMode,
					}
				}
				if err := driver.AddVariable(variable); err != nil {
					return nil, fmt.Errorf("メッシュ %s の読み込みに失敗しました: %w", d.Name, err)
				}
			}
			shapeKey.Driver = driver
		}
		mesh.ShapeKeys = append(mesh.ShapeKeys, shapeKey)
	}
	for _, modifierDoc := range d.Modifiers {
		mesh.Modifiers = append(mesh.Modifiers, &model.Modifier{
			Name:         modifierDoc.Name,
			Type:         model.ModifierType(modifierDoc.Type),
			Object:       modifierDoc.Object,
			VertexGroupA: modifierDoc.VertexGroupA,
			VertexGroupB: modifierDoc.VertexGroupB,
			MixMode:      model.WeightMixMode(modifierDoc.MixMode),
			MixSet:       model.WeightMixSet(modifierDoc.MixSet),
		})
	}
	return mesh, nil
}

// newSceneDocument はシーンを保存用の文書へ変換する。
func newSceneDocument(scene *model.Scene) *sceneDocument {
	doc := &sceneDocument{}
	for _, skeleton := range scene.Armatures {
		armatureDoc := armatureDocument{Name: skeleton.Name}
		for _, bone := range skeleton.Bones() {
			armatureDoc.Bones = append(armatureDoc.Bones, newBoneDocument(bone))
		}
		doc.Armatures = append(doc.Armatures, armatureDoc)
	}
	for _, mesh := range scene.Meshes {
		doc.Meshes = append(doc.Meshes, newMeshDocument(mesh))
	}
	return doc
}

func newBoneDocument(bone *model.Bone) boneDocument {
	deform := bone.Deform
	boneDoc := boneDocument{
		Name:       bone.Name,
		Head:       array3(bone.Head),
		Tail:       array3(bone.Tail),
		Roll:       bone.Roll,
		Parent:     bone.Parent,
		Connected:  bone.Connected,
		Deform:     &deform,
		Collection: bone.Collection,
	}
	for _, constraint := range bone.Constraints {
		constraintDoc := constraintDocument{
			Name:      constraint.Name,
			Type:      string(constraint.Type),
			Target:    constraint.Target,
			Subtarget: constraint.Subtarget,
		}
		if limit := constraint.Limit; limit != nil {
			constraintDoc.Limit = &limitDocument{
				X:                 axisLimitDocument(limit.Axes[0]),
				Y:                 axisLimitDocument(limit.Axes[1]),
				Z:                 axisLimitDocument(limit.Axes[2]),
				EulerOrder:        string(limit.EulerOrder),
				UseTransformLimit: limit.UseTransformLimit,
				OwnerSpace:        string(limit.OwnerSpace),
			}
		}
		boneDoc.Constraints = append(boneDoc.Constraints, constraintDoc)
	}
	return boneDoc
}

func newMeshDocument(mesh *model.Mesh) meshDocument {
	meshDoc := meshDocument{Name: mesh.Name, Parent: mesh.Parent, VertexCount: mesh.VertexCount}
	for _, position := range mesh.Vertices {
		meshDoc.Vertices = append(meshDoc.Vertices, array3(position))
	}
	meshDoc.Selected = mesh.SelectedIndexes()
	for _, group := range mesh.VertexGroups {
		weights := make(map[int]float64, len(group.Weights))
		for index, weight := range group.Weights {
			weights[index] = weight
		}
		meshDoc.VertexGroups = append(meshDoc.VertexGroups, vertexGroupDocument{
			Name:    group.Name,
			Lock:    group.LockWeight,
			Weights: weights,
		})
	}
	for _, shapeKey := range mesh.ShapeKeys {
		keyDoc := shapeKeyDocument{Name: shapeKey.Name, Value: shapeKey.Value}
		if driver := shapeKey.Driver; driver != nil {
			driverDoc := &driverDocument{DataPath: driver.DataPath, Expression: driver.Expression}
			for _, variable := range driver.Variables {
				variableDoc := variableDocument{Name: variable.Name, Type: string(variable.Type)}
				for i, target := range variable.Targets {
					// 2番目のターゲットは回転差分/距離のみ使う
					if i > 0 && target == (model.DriverTarget{}) {
						continue
					}
					variableDoc.Targets = append(variableDoc.Targets, targetDocument{
						ID:             target.ID,
						BoneTarget:     target.BoneTarget,
						DataPath:       target.DataPath,
						TransformType:  string(target.TransformType),
						TransformSpace: string(target.TransformSpace),
						RotationMode:   target.RotationMode,
					})
				}
				driverDoc.Variables = append(driverDoc.Variables, variableDoc)
			}
			keyDoc.Driver = driverDoc
		}
		meshDoc.ShapeKeys = append(meshDoc.ShapeKeys, keyDoc)
	}
	for _, modifier := range mesh.Modifiers {
		meshDoc.Modifiers = append(meshDoc.Modifiers, modifierDocument{
			Name:         modifier.Name,
			Type:         string(modifier.Type),
			Object:       modifier.Object,
			VertexGroupA: modifier.VertexGroupA,
			VertexGroupB: modifier.VertexGroupB,
			MixMode:      string(modifier.MixMode),
			MixSet:       string(modifier.MixSet),
		})
	}
	return meshDoc
}

func vec3(values [3]float64) r3.Vec {
	return r3.Vec{X: values[0], Y: values[1], Z: values[2]}
}

func array3(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func valueOr(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
