// 指示: miu200521358
package model

import (
	"errors"
	"testing"
)

func newMeshForTest() *Mesh {
	mesh := NewMesh("Genesis8Female.Shape", 4)
	foot := NewVertexGroup("foot.l")
	foot.Weights[0] = 0.75
	foot.Weights[1] = 0.5
	metatarsals := NewVertexGroup("lMetatarsals")
	metatarsals.Weights[0] = 0.5
	metatarsals.Weights[2] = 0.25
	mesh.VertexGroups = append(mesh.VertexGroups, foot, metatarsals)
	mesh.Modifiers = append(mesh.Modifiers, &Modifier{Name: "Armature", Type: MODIFIER_ARMATURE, Object: "Genesis8Female"})
	return mesh
}

func TestApplyWeightMixAddsClampedWeights(t *testing.T) {
	mesh := newMeshForTest()
	modifier := mesh.AddModifier(&Modifier{
		Name:         "foot.l",
		Type:         MODIFIER_VERTEX_WEIGHT_MIX,
		VertexGroupA: "foot.l",
		VertexGroupB: "lMetatarsals",
		MixMode:      MIX_MODE_ADD,
		MixSet:       MIX_SET_ALL,
	})
	if err := mesh.MoveModifier(modifier.Name, 0); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if mesh.Modifiers[0].Name != "foot.l" {
		t.Fatalf("expected mix modifier at index 0: got=%s", mesh.Modifiers[0].Name)
	}

	if err := mesh.ApplyModifier("foot.l"); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	foot, _ := mesh.VertexGroup("foot.l")
	want := map[int]float64{0: 1.0, 1: 0.5, 2: 0.25}
	if len(foot.Weights) != len(want) {
		t.Fatalf("weight count mismatch: got=%v want=%v", foot.Weights, want)
	}
	for index, weight := range want {
		if foot.Weights[index] != weight {
			t.Fatalf("weight mismatch at %d: got=%f want=%f", index, foot.Weights[index], weight)
		}
	}
	if _, err := mesh.Modifier("foot.l"); !errors.Is(err, ErrModifierNotFound) {
		t.Fatalf("applied modifier should be removed: %v", err)
	}
}

func TestApplyWeightMixFailsWithoutGroupAndKeepsModifier(t *testing.T) {
	mesh := newMeshForTest()
	mesh.AddModifier(&Modifier{
		Name:         "foot.r",
		Type:         MODIFIER_VERTEX_WEIGHT_MIX,
		VertexGroupA: "foot.r",
		VertexGroupB: "rMetatarsals",
		MixMode:      MIX_MODE_ADD,
		MixSet:       MIX_SET_ALL,
	})

	err := mesh.ApplyModifier("foot.r")
	if !errors.Is(err, ErrVertexGroupNotFound) {
		t.Fatalf("expected ErrVertexGroupNotFound: got=%v", err)
	}
	if _, err := mesh.Modifier("foot.r"); err != nil {
		t.Fatalf("failed modifier should stay on stack: %v", err)
	}
}

func TestApplyArmatureModifierIsNotApplicable(t *testing.T) {
	mesh := newMeshForTest()
	if err := mesh.ApplyModifier("Armature"); !errors.Is(err, ErrModifierNotApplicable) {
		t.Fatalf("expected ErrModifierNotApplicable: got=%v", err)
	}
}

func TestAddModifierSuffixesDuplicateNames(t *testing.T) {
	mesh := newMeshForTest()
	added := mesh.AddModifier(&Modifier{Name: "Armature", Type: MODIFIER_ARMATURE})
	if added.Name != "Armature.001" {
		t.Fatalf("expected suffixed name: got=%s", added.Name)
	}
}

func TestRenameVertexGroupRejectsExistingName(t *testing.T) {
	mesh := newMeshForTest()
	if err := mesh.RenameVertexGroup("lMetatarsals", "foot.l"); !errors.Is(err, ErrDuplicateVertexGroup) {
		t.Fatalf("expected ErrDuplicateVertexGroup: got=%v", err)
	}
	if err := mesh.RenameVertexGroup("missing", "foot.l"); !errors.Is(err, ErrVertexGroupNotFound) {
		t.Fatalf("expected ErrVertexGroupNotFound: got=%v", err)
	}
}

func TestDriverVariableCloneIsIndependent(t *testing.T) {
	variable := &DriverVariable{
		Name: "A",
		Type: VAR_TRANSFORMS,
		Targets: [2]DriverTarget{{
			ID:            "Genesis8Female",
			BoneTarget:    "lShin",
			TransformType: ROT_X,
		}},
	}
	cloned, err := variable.Clone()
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}
	cloned.Targets[0].BoneTarget = "leg_stretch.l"
	if variable.Targets[0].BoneTarget != "lShin" {
		t.Fatalf("clone should not share targets")
	}
	if cloned.Targets[0].TransformType != ROT_X {
		t.Fatalf("clone should copy transform type: got=%s", cloned.Targets[0].TransformType)
	}
}

func TestDriverUniqueVariableName(t *testing.T) {
	driver := &Driver{Variables: []*DriverVariable{{Name: "A"}, {Name: "A_1"}}}
	if got := driver.UniqueVariableName("A"); got != "A_2" {
		t.Fatalf("expected A_2: got=%s", got)
	}
	if !driver.RemoveVariable("A") {
		t.Fatalf("expected A to be removed")
	}
	if got := driver.UniqueVariableName("A"); got != "A" {
		t.Fatalf("expected A: got=%s", got)
	}
}
