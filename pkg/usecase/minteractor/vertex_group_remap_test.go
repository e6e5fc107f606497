// 指示: miu200521358
package minteractor

import (
	"math"
	"strings"
	"testing"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
)

func TestRemapVertexGroupsRenamesLocksAndMerges(t *testing.T) {
	mesh := newDazMeshForTest()
	correspondence := mapping.DefaultCorrespondence()
	collector := NewReportCollector(nil)

	result := RemapVertexGroups(mesh, correspondence, mapping.DefaultWeightMerges(), collector)
	if len(result.Renamed) != 2 || result.Renamed[0] != "arm_stretch.l" || result.Renamed[1] != "foot.l" {
		t.Fatalf("renamed mismatch: %v", result.Renamed)
	}
	if len(result.Merged) != 1 || result.Merged[0] != "foot.l" {
		t.Fatalf("merged mismatch: %v", result.Merged)
	}
	if result.Missing != correspondence.Len()-2 {
		t.Fatalf("missing mismatch: got=%d", result.Missing)
	}

	arm, err := mesh.VertexGroup("arm_stretch.l")
	if err != nil || !arm.LockWeight {
		t.Fatalf("renamed group should be locked: %v", err)
	}
	foot, err := mesh.VertexGroup("foot.l")
	if err != nil {
		t.Fatalf("foot group missing: %v", err)
	}
	want := map[int]float64{1: 0.9, 2: 0.2, 3: 0.5}
	if len(foot.Weights) != len(want) {
		t.Fatalf("foot weights mismatch: %v", foot.Weights)
	}
	for index, weight := range want {
		if math.Abs(foot.Weights[index]-weight) > 1e-9 {
			t.Fatalf("foot weight %d mismatch: got=%v want=%v", index, foot.Weights[index], weight)
		}
	}
	if mesh.HasVertexGroup("lMetatarsals") {
		t.Fatalf("satellite group should be removed")
	}
	if !mesh.HasVertexGroup("lEye") || !mesh.HasVertexGroup("skirt_front") {
		t.Fatalf("unmapped groups should be kept")
	}
	for _, modifier := range mesh.Modifiers {
		if strings.HasPrefix(modifier.Name, weightMergeModifierPrefix) {
			t.Fatalf("temporary modifier left on the stack: %s", modifier.Name)
		}
	}
	if collector.CountByID(model.WarningVertexGroupConflict) != 0 {
		t.Fatalf("unexpected conflict: %v", collector.Entries())
	}
}

func TestRemapVertexGroupsIsIdempotent(t *testing.T) {
	mesh := newDazMeshForTest()
	correspondence := mapping.DefaultCorrespondence()
	merges := mapping.DefaultWeightMerges()
	RemapVertexGroups(mesh, correspondence, merges, nil)
	names := make([]string, 0, len(mesh.VertexGroups))
	for _, group := range mesh.VertexGroups {
		names = append(names, group.Name)
	}

	collector := NewReportCollector(nil)
	second := RemapVertexGroups(mesh, correspondence, merges, collector)
	if len(second.Renamed) != 0 || len(second.Merged) != 0 {
		t.Fatalf("second pass should not rename or merge: %+v", second)
	}
	if collector.CountByID(model.WarningVertexGroupConflict) != 0 {
		t.Fatalf("second pass should not report conflicts: %v", collector.Entries())
	}
	if len(mesh.VertexGroups) != len(names) {
		t.Fatalf("vertex group count changed: %d -> %d", len(names), len(mesh.VertexGroups))
	}
	for i, group := range mesh.VertexGroups {
		if group.Name != names[i] {
			t.Fatalf("vertex group order changed at %d: %s -> %s", i, names[i], group.Name)
		}
	}
}

func TestRemapVertexGroupsKeepsConflictingSource(t *testing.T) {
	mesh := model.NewMesh(dazMeshForTest, 1)
	mesh.VertexGroups = append(mesh.VertexGroups, model.NewVertexGroup("lHand"), model.NewVertexGroup("hand.l"))
	collector := NewReportCollector(nil)

	result := RemapVertexGroups(mesh, mapping.DefaultCorrespondence(), nil, collector)
	if len(result.Renamed) != 0 {
		t.Fatalf("conflicting group should not be renamed: %v", result.Renamed)
	}
	if !mesh.HasVertexGroup("lHand") {
		t.Fatalf("source group should be kept")
	}
	if collector.CountByID(model.WarningVertexGroupConflict) != 1 {
		t.Fatalf("conflict should be reported: %v", collector.Entries())
	}
}

func TestMergeWeightsCreatesMissingTarget(t *testing.T) {
	mesh := model.NewMesh(dazMeshForTest, 2)
	satellite := model.NewVertexGroup("rMetatarsals")
	satellite.Weights[1] = 0.4
	mesh.VertexGroups = append(mesh.VertexGroups, satellite)

	if !mergeWeights(mesh, mapping.WeightMerge{Target: "foot.r", Satellite: "rMetatarsals"}, nil) {
		t.Fatalf("merge should succeed")
	}
	foot, err := mesh.VertexGroup("foot.r")
	if err != nil {
		t.Fatalf("target group should be created: %v", err)
	}
	if math.Abs(foot.Weights[1]-0.4) > 1e-9 || len(foot.Weights) != 1 {
		t.Fatalf("merged weights mismatch: %v", foot.Weights)
	}
	if mesh.HasVertexGroup("rMetatarsals") {
		t.Fatalf("satellite group should be removed")
	}
}

func TestMergeWeightsSkipsMissingSatellite(t *testing.T) {
	mesh := model.NewMesh(dazMeshForTest, 1)
	collector := NewReportCollector(nil)

	if mergeWeights(mesh, mapping.WeightMerge{Target: "foot.l", Satellite: "lMetatarsals"}, collector) {
		t.Fatalf("merge without satellite should be skipped")
	}
	if mesh.HasVertexGroup("foot.l") {
		t.Fatalf("target group should not be created when skipped")
	}
	if collector.CountByID(model.WarningVertexGroupMissing) != 1 {
		t.Fatalf("skip should be reported: %v", collector.Entries())
	}
}

// failMergeApplyForTest は一時モディファイアの焼き込みを失敗させ、終了時に元へ戻す。
func failMergeApplyForTest(t *testing.T, apply func(mesh *model.Mesh, name string) error) {
	t.Helper()
	original := applyMergeModifier
	t.Cleanup(func() { applyMergeModifier = original })
	applyMergeModifier = apply
}

func assertNoWeightMixModifierForTest(t *testing.T, mesh *model.Mesh) {
	t.Helper()
	for _, modifier := range mesh.Modifiers {
		if modifier.Type == model.MODIFIER_VERTEX_WEIGHT_MIX {
			t.Fatalf("weight mix modifier left on the stack: %s", modifier.Name)
		}
	}
	if len(mesh.Modifiers) != 1 || mesh.Modifiers[0].Type != model.MODIFIER_ARMATURE {
		t.Fatalf("modifier stack mismatch: %+v", mesh.Modifiers)
	}
}

func TestMergeWeightsCleansUpWhenApplyFails(t *testing.T) {
	failMergeApplyForTest(t, func(*model.Mesh, string) error {
		return model.ErrModifierNotApplicable
	})
	mesh := newDazMeshForTest()
	collector := NewReportCollector(nil)

	if mergeWeights(mesh, mapping.WeightMerge{Target: "lFoot", Satellite: "lMetatarsals"}, collector) {
		t.Fatalf("merge should fail")
	}
	assertNoWeightMixModifierForTest(t, mesh)
	if mesh.HasVertexGroup("lMetatarsals") {
		t.Fatalf("satellite group should be removed after a failed merge")
	}
	foot, err := mesh.VertexGroup("lFoot")
	if err != nil {
		t.Fatalf("target group missing: %v", err)
	}
	if len(foot.Weights) != 2 || foot.Weights[1] != 0.6 || foot.Weights[2] != 0.2 {
		t.Fatalf("target weights should be untouched: %v", foot.Weights)
	}
	if got := collector.CountByID(model.WarningWeightMergeFailed); got != 1 {
		t.Fatalf("failure should be reported once: got=%d %v", got, collector.Entries())
	}
}

func TestMergeWeightsReportsModifierThatCannotBeRemoved(t *testing.T) {
	failMergeApplyForTest(t, func(mesh *model.Mesh, name string) error {
		if err := mesh.RemoveModifier(name); err != nil {
			return err
		}
		return model.ErrModifierNotApplicable
	})
	mesh := newDazMeshForTest()
	collector := NewReportCollector(nil)

	if mergeWeights(mesh, mapping.WeightMerge{Target: "lFoot", Satellite: "lMetatarsals"}, collector) {
		t.Fatalf("merge should fail")
	}
	assertNoWeightMixModifierForTest(t, mesh)
	if mesh.HasVertexGroup("lMetatarsals") {
		t.Fatalf("satellite group should be removed after a failed merge")
	}
	if got := collector.CountByID(model.WarningWeightMergeFailed); got != 2 {
		t.Fatalf("apply and removal failures should both be reported: got=%d %v", got, collector.Entries())
	}
}
