// 指示: miu200521358
package minteractor

import (
	"math"
	"strings"
	"testing"

	"github.com/miu200521358/mu_daz2arp/pkg/adapter/rigprovider"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	dazArmatureForTest = "Genesis8Female"
	dazMeshForTest     = "Genesis8Female.Shape"
)

// dazBoneForTest はテスト用Daz骨格1本の定義を表す。名前と親の "{s}" は l/r に置換する。
type dazBoneForTest struct {
	name   string
	parent string
	head   r3.Vec
	tail   r3.Vec
	roll   float64
}

func pos(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

var dazCenterBonesForTest = []dazBoneForTest{
	{name: "hip", head: pos(0, 0, 1.0), tail: pos(0, 0, 1.05)},
	{name: "pelvis", parent: "hip", head: pos(0, 0, 1.0), tail: pos(0, 0, 0.9), roll: 0.1},
	{name: "abdomenLower", parent: "hip", head: pos(0, 0, 1.0), tail: pos(0, 0, 1.1)},
	{name: "abdomenUpper", parent: "abdomenLower", head: pos(0, 0, 1.1), tail: pos(0, 0, 1.2)},
	{name: "chestLower", parent: "abdomenUpper", head: pos(0, 0, 1.2), tail: pos(0, 0, 1.3)},
	{name: "chestUpper", parent: "chestLower", head: pos(0, 0, 1.3), tail: pos(0, 0, 1.4)},
	{name: "neckLower", parent: "chestUpper", head: pos(0, 0, 1.4), tail: pos(0, 0, 1.45)},
	{name: "neckUpper", parent: "neckLower", head: pos(0, 0, 1.45), tail: pos(0, 0, 1.5)},
	{name: "head", parent: "neckUpper", head: pos(0, 0, 1.5), tail: pos(0, 0, 1.7)},
	{name: "skirt_front", parent: "pelvis", head: pos(0, -0.1, 0.95), tail: pos(0, -0.12, 0.8)},
	{name: "skirt_front_2", parent: "skirt_front", head: pos(0, -0.12, 0.8), tail: pos(0, -0.13, 0.65)},
}

var dazSideBonesForTest = []dazBoneForTest{
	{name: "{s}Eye", parent: "head", head: pos(0.03, -0.08, 1.6), tail: pos(0.03, -0.1, 1.6)},
	{name: "{s}Pectoral", parent: "chestLower", head: pos(0.08, -0.05, 1.3), tail: pos(0.08, -0.12, 1.3)},
	{name: "{s}Collar", parent: "chestUpper", head: pos(0.02, 0, 1.4), tail: pos(0.15, 0, 1.42)},
	{name: "{s}ShldrBend", parent: "{s}Collar", head: pos(0.15, 0, 1.42), tail: pos(0.28, 0, 1.41), roll: 0.2},
	{name: "{s}ShldrTwist", parent: "{s}ShldrBend", head: pos(0.28, 0, 1.41), tail: pos(0.42, 0, 1.4), roll: 0.3},
	{name: "{s}ForearmBend", parent: "{s}ShldrTwist", head: pos(0.42, 0, 1.4), tail: pos(0.55, 0, 1.39)},
	{name: "{s}ForearmTwist", parent: "{s}ForearmBend", head: pos(0.55, 0, 1.39), tail: pos(0.68, 0, 1.38)},
	{name: "{s}Hand", parent: "{s}ForearmTwist", head: pos(0.68, 0, 1.38), tail: pos(0.76, 0, 1.37)},
	{name: "{s}Carpal1", parent: "{s}Hand", head: pos(0.69, -0.01, 1.38), tail: pos(0.76, -0.02, 1.38)},
	{name: "{s}Index1", parent: "{s}Carpal1", head: pos(0.76, -0.02, 1.38), tail: pos(0.8, -0.02, 1.38)},
	{name: "{s}Index2", parent: "{s}Index1", head: pos(0.8, -0.02, 1.38), tail: pos(0.83, -0.02, 1.38)},
	{name: "{s}Index3", parent: "{s}Index2", head: pos(0.83, -0.02, 1.38), tail: pos(0.85, -0.02, 1.38)},
	{name: "{s}Carpal2", parent: "{s}Hand", head: pos(0.69, -0.005, 1.38), tail: pos(0.76, -0.005, 1.38)},
	{name: "{s}Mid1", parent: "{s}Carpal2", head: pos(0.76, -0.005, 1.38), tail: pos(0.8, -0.005, 1.38)},
	{name: "{s}Mid2", parent: "{s}Mid1", head: pos(0.8, -0.005, 1.38), tail: pos(0.83, -0.005, 1.38)},
	{name: "{s}Mid3", parent: "{s}Mid2", head: pos(0.83, -0.005, 1.38), tail: pos(0.85, -0.005, 1.38)},
	{name: "{s}Carpal3", parent: "{s}Hand", head: pos(0.69, 0.005, 1.38), tail: pos(0.76, 0.005, 1.38)},
	{name: "{s}Ring1", parent: "{s}Carpal3", head: pos(0.76, 0.005, 1.38), tail: pos(0.8, 0.005, 1.38)},
	{name: "{s}Ring2", parent: "{s}Ring1", head: pos(0.8, 0.005, 1.38), tail: pos(0.83, 0.005, 1.38)},
	{name: "{s}Ring3", parent: "{s}Ring2", head: pos(0.83, 0.005, 1.38), tail: pos(0.85, 0.005, 1.38)},
	{name: "{s}Carpal4", parent: "{s}Hand", head: pos(0.69, 0.01, 1.38), tail: pos(0.76, 0.02, 1.38)},
	{name: "{s}Pinky1", parent: "{s}Carpal4", head: pos(0.76, 0.02, 1.38), tail: pos(0.79, 0.02, 1.38)},
	{name: "{s}Pinky2", parent: "{s}Pinky1", head: pos(0.79, 0.02, 1.38), tail: pos(0.81, 0.02, 1.38)},
	{name: "{s}Pinky3", parent: "{s}Pinky2", head: pos(0.81, 0.02, 1.38), tail: pos(0.83, 0.02, 1.38)},
	{name: "{s}Thumb1", parent: "{s}Hand", head: pos(0.7, -0.03, 1.37), tail: pos(0.73, -0.05, 1.37)},
	{name: "{s}Thumb2", parent: "{s}Thumb1", head: pos(0.73, -0.05, 1.37), tail: pos(0.75, -0.06, 1.37)},
	{name: "{s}Thumb3", parent: "{s}Thumb2", head: pos(0.75, -0.06, 1.37), tail: pos(0.77, -0.07, 1.37)},
	{name: "{s}ThighBend", parent: "pelvis", head: pos(0.1, 0, 0.95), tail: pos(0.1, 0, 0.7)},
	{name: "{s}ThighTwist", parent: "{s}ThighBend", head: pos(0.1, 0, 0.7), tail: pos(0.1, 0, 0.5)},
	{name: "{s}Shin", parent: "{s}ThighTwist", head: pos(0.1, 0, 0.5), tail: pos(0.1, 0, 0.1)},
	{name: "{s}Foot", parent: "{s}Shin", head: pos(0.1, 0, 0.1), tail: pos(0.1, -0.08, 0.03)},
	{name: "{s}Metatarsals", parent: "{s}Foot", head: pos(0.1, -0.02, 0.04), tail: pos(0.1, -0.1, 0.03)},
	{name: "{s}Toe", parent: "{s}Foot", head: pos(0.1, -0.12, 0.02), tail: pos(0.1, -0.17, 0.02)},
	{name: "{s}BigToe", parent: "{s}Foot", head: pos(0.08, -0.15, 0.02), tail: pos(0.08, -0.18, 0.02)},
	{name: "{s}BigToe_2", parent: "{s}BigToe", head: pos(0.08, -0.18, 0.02), tail: pos(0.08, -0.2, 0.02)},
	{name: "{s}SmallToe1", parent: "{s}Toe", head: pos(0.095, -0.16, 0.02), tail: pos(0.095, -0.18, 0.02)},
	{name: "{s}SmallToe1_2", parent: "{s}SmallToe1", head: pos(0.095, -0.18, 0.02), tail: pos(0.095, -0.19, 0.02)},
	{name: "{s}SmallToe2", parent: "{s}Toe", head: pos(0.105, -0.16, 0.02), tail: pos(0.105, -0.18, 0.02)},
	{name: "{s}SmallToe2_2", parent: "{s}SmallToe2", head: pos(0.105, -0.18, 0.02), tail: pos(0.105, -0.19, 0.02)},
	{name: "{s}SmallToe3", parent: "{s}Toe", head: pos(0.115, -0.155, 0.02), tail: pos(0.115, -0.175, 0.02)},
	{name: "{s}SmallToe3_2", parent: "{s}SmallToe3", head: pos(0.115, -0.175, 0.02), tail: pos(0.115, -0.185, 0.02)},
	{name: "{s}SmallToe4", parent: "{s}Toe", head: pos(0.125, -0.15, 0.02), tail: pos(0.125, -0.17, 0.02)},
	{name: "{s}SmallToe4_2", parent: "{s}SmallToe4", head: pos(0.125, -0.17, 0.02), tail: pos(0.125, -0.18, 0.02)},
}

// newDazSkeletonForTest はGenesis 8相当のテスト用Daz骨格を生成する。右側はX反転した鏡像とする。
func newDazSkeletonForTest(t *testing.T) *model.Skeleton {
	t.Helper()
	skeleton := model.NewSkeleton(dazArmatureForTest)
	for _, entry := range dazCenterBonesForTest {
		addDazBoneForTest(t, skeleton, entry, "", false)
	}
	for _, side := range []string{"l", "r"} {
		for _, entry := range dazSideBonesForTest {
			addDazBoneForTest(t, skeleton, entry, side, side == "r")
		}
	}

	shoulder, _ := skeleton.Get("lShldrBend")
	shoulder.Constraints = append(shoulder.Constraints, &model.Constraint{
		Name: "Limit Rotation",
		Type: model.CONSTRAINT_LIMIT_ROTATION,
		Limit: &model.RotationLimit{
			Axes: [3]model.AxisLimit{
				{Use: true, Min: -math.Pi / 4, Max: math.Pi / 2},
				{Use: false},
				{Use: true, Min: -0.3, Max: 0.3},
			},
			EulerOrder:        model.EULER_YZX,
			UseTransformLimit: true,
			OwnerSpace:        model.SPACE_LOCAL,
		},
	})
	forearm, _ := skeleton.Get("lForearmBend")
	forearm.Constraints = append(forearm.Constraints, &model.Constraint{
		Name: "Limit Rotation",
		Type: model.CONSTRAINT_LIMIT_ROTATION,
		Limit: &model.RotationLimit{
			Axes:       [3]model.AxisLimit{{Use: true, Min: 0, Max: 2.4}},
			EulerOrder: model.EULER_XYZ,
			OwnerSpace: model.SPACE_LOCAL,
		},
	})
	return skeleton
}

func addDazBoneForTest(t *testing.T, skeleton *model.Skeleton, entry dazBoneForTest, side string, mirrored bool) {
	t.Helper()
	head, tail, roll := entry.head, entry.tail, entry.roll
	if mirrored {
		head.X, tail.X, roll = -head.X, -tail.X, -roll
	}
	bone := model.NewBone(strings.ReplaceAll(entry.name, "{s}", side), head, tail, roll)
	bone.Parent = strings.ReplaceAll(entry.parent, "{s}", side)
	bone.Connected = bone.Parent != "" && entry.parent != "hip"
	if err := skeleton.Add(bone); err != nil {
		t.Fatalf("fixture bone add failed: %v", err)
	}
}

// newArpRigForTest は組み込みテンプレートから制御リグまで生成したARPリグを返す。
// withoutBoneForTest は指定ボーンとその子孫を除いた骨格を作り直す。
func withoutBoneForTest(t *testing.T, source *model.Skeleton, name string) *model.Skeleton {
	t.Helper()
	skeleton := model.NewSkeleton(source.Name)
	for _, bone := range source.Bones() {
		if bone.Name == name || (bone.Parent != "" && !skeleton.Contains(bone.Parent)) {
			continue
		}
		if err := skeleton.Add(bone.Copy()); err != nil {
			t.Fatalf("add bone %s failed: %v", bone.Name, err)
		}
	}
	return skeleton
}

func newArpRigForTest(t *testing.T, scene *model.Scene, breast bool) *model.Skeleton {
	t.Helper()
	provider := rigprovider.NewTemplateRigProvider()
	rig, err := provider.AppendReferenceRig(scene, moutput.RigOptions{
		Name: DefaultRigName, SpineCount: rigSpineCount, NeckCount: rigNeckCount, Toes: true, Breast: breast,
	})
	if err != nil {
		t.Fatalf("append reference rig failed: %v", err)
	}
	if err := provider.MatchToRig(rig); err != nil {
		t.Fatalf("match to rig failed: %v", err)
	}
	return rig
}

// newTransformVariableForTest はDazボーンの回転を読むドライバー変数を生成する。
func newTransformVariableForTest(name string, bone string, transform model.TransformType) *model.DriverVariable {
	return &model.DriverVariable{
		Name: name,
		Type: model.VAR_TRANSFORMS,
		Targets: [2]model.DriverTarget{{
			ID:             dazArmatureForTest,
			BoneTarget:     bone,
			TransformType:  transform,
			TransformSpace: model.TRANSFORM_SPACE_LOCAL,
			RotationMode:   "AUTO",
		}},
	}
}

// newShapeKeyForTest はドライバー付きのシェイプキーを生成する。
func newShapeKeyForTest(name string, expression string, variables ...*model.DriverVariable) *model.ShapeKey {
	return &model.ShapeKey{
		Name: name,
		Driver: &model.Driver{
			DataPath:   `key_blocks["` + name + `"].value`,
			Expression: expression,
			Variables:  variables,
		},
	}
}

// newDazMeshForTest はDaz骨格を親に持つテスト用メッシュを生成する。
func newDazMeshForTest() *model.Mesh {
	mesh := model.NewMesh(dazMeshForTest, 4)
	mesh.Parent = dazArmatureForTest
	mesh.Modifiers = append(mesh.Modifiers, &model.Modifier{Name: "Armature", Type: model.MODIFIER_ARMATURE, Object: dazArmatureForTest})

	weights := map[string]map[int]float64{
		"lShldrBend":   {0: 1},
		"lFoot":        {1: 0.6, 2: 0.2},
		"lMetatarsals": {1: 0.3, 3: 0.5},
		"lEye":         {0: 0.25},
		"skirt_front":  {2: 0.5},
	}
	for _, name := range []string{"lShldrBend", "lFoot", "lMetatarsals", "lEye", "skirt_front"} {
		group := model.NewVertexGroup(name)
		for index, weight := range weights[name] {
			group.Weights[index] = weight
		}
		mesh.VertexGroups = append(mesh.VertexGroups, group)
	}

	mesh.ShapeKeys = append(mesh.ShapeKeys,
		newShapeKeyForTest("pJCMShldrUp_90_L", "erc_keyed(var, 0, 1.571, 0, 1.571)",
			newTransformVariableForTest("var", "lShldrBend", model.ROT_X)),
		newShapeKeyForTest("pJCMNeckFwd_35", "erc_keyed(var, 0, 0.611, 0, 0.611)",
			newTransformVariableForTest("var", "neckLower", model.ROT_X),
			newTransformVariableForTest("unused", "head", model.ROT_X)),
		newShapeKeyForTest("pJCMForeArmFwd_75_135_L", "erc_keyed(var,0.0,2.356,0,2.356)",
			newTransformVariableForTest("var", "lForearmBend", model.ROT_Z)),
		newShapeKeyForTest("pJCMForeArmTwist_L", "var * 2",
			newTransformVariableForTest("var", "lForearmTwist", model.ROT_Y)),
		newShapeKeyForTest("eCTRLSmile", "var",
			newTransformVariableForTest("var", "head", model.ROT_X)),
	)
	return mesh
}

// newDazSceneForTest はDaz骨格とメッシュ1件を持つシーンを生成する。
func newDazSceneForTest(t *testing.T) *model.Scene {
	t.Helper()
	scene := model.NewScene()
	scene.Armatures = append(scene.Armatures, newDazSkeletonForTest(t))
	scene.Meshes = append(scene.Meshes, newDazMeshForTest())
	return scene
}

func assertVecNearForTest(t *testing.T, label string, got r3.Vec, want r3.Vec) {
	t.Helper()
	if r3.Norm(r3.Sub(got, want)) > 1e-9 {
		t.Fatalf("%s mismatch: got=%v want=%v", label, got, want)
	}
}

func countWarningsForTest(entries []Warning, id model.WarningID) int {
	count := 0
	for _, entry := range entries {
		if entry.ID == id {
			count++
		}
	}
	return count
}
