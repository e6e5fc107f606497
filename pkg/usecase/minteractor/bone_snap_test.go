// 指示: miu200521358
package minteractor

import (
	"math"
	"testing"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"gonum.org/v1/gonum/spatial/r3"
)

func snapRigForTest(t *testing.T, source *model.Skeleton) (*model.Skeleton, []Warning) {
	t.Helper()
	rig := newArpRigForTest(t, model.NewScene(), true)
	warnings := SnapReferenceBones(rig, source, mapping.DefaultSnapRules())
	return rig, warnings
}

func mustBoneForTest(t *testing.T, skeleton *model.Skeleton, name string) *model.Bone {
	t.Helper()
	bone, err := skeleton.Get(name)
	if err != nil {
		t.Fatalf("bone not found: %v", err)
	}
	return bone
}

func TestSnapReferenceBonesFollowsDazSkeleton(t *testing.T) {
	source := newDazSkeletonForTest(t)
	rig, warnings := snapRigForTest(t, source)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	root := mustBoneForTest(t, rig, "root_ref.x")
	assertVecNearForTest(t, "root head", root.Head, pos(0, 0, 0.9))
	assertVecNearForTest(t, "root tail", root.Tail, pos(0, 0, 1.0))
	if math.Abs(root.Roll-(0.1-math.Pi)) > 1e-9 {
		t.Fatalf("flipped roll mismatch: got=%v", root.Roll)
	}

	arm := mustBoneForTest(t, rig, "arm_ref.l")
	assertVecNearForTest(t, "arm head", arm.Head, pos(0.15, 0, 1.42))
	assertVecNearForTest(t, "arm tail", arm.Tail, pos(0.42, 0, 1.4))
	if arm.Roll != 0.3 {
		t.Fatalf("arm roll should come from the twist bone: got=%v", arm.Roll)
	}
	if arm.Connected {
		t.Fatalf("arm reference should be disconnected")
	}

	armRight := mustBoneForTest(t, rig, "arm_ref.r")
	assertVecNearForTest(t, "right arm head", armRight.Head, pos(-0.15, 0, 1.42))

	leg := mustBoneForTest(t, rig, "leg_ref.l")
	assertVecNearForTest(t, "shin tail", leg.Tail, pos(0.1, 0, 0.1))

	foot := mustBoneForTest(t, rig, "foot_ref.l")
	assertVecNearForTest(t, "foot head", foot.Head, pos(0.1, 0, 0.1))
	assertVecNearForTest(t, "foot tail", foot.Tail, pos(0.1, -0.12, 0.02))

	proximal := mustBoneForTest(t, rig, "toes_index1_ref.l")
	assertVecNearForTest(t, "proximal toe head", proximal.Head, pos(0.095, -0.14, 0.02))
	assertVecNearForTest(t, "proximal toe tail", proximal.Tail, pos(0.095, -0.16, 0.02))

	breast := mustBoneForTest(t, rig, "breast_ref.l")
	assertVecNearForTest(t, "breast head", breast.Head, pos(0.08, -0.05, 1.3))
	assertVecNearForTest(t, "breast direction", breast.Vector(), pos(0, -0.08, 0))
}

func TestSnapReferenceBonesPlacesHeelAndBanks(t *testing.T) {
	source := newDazSkeletonForTest(t)
	rig, _ := snapRigForTest(t, source)

	heel := mustBoneForTest(t, rig, "foot_heel_ref.l")
	assertVecNearForTest(t, "heel head", heel.Head, pos(0.1, 0.03, 0))
	assertVecNearForTest(t, "heel tail", heel.Tail, pos(0.1, -0.02, 0))

	outer := mustBoneForTest(t, rig, "foot_bank_01_ref.l")
	assertVecNearForTest(t, "outer bank head", outer.Head, pos(0.13, 0.03, 0))
	inner := mustBoneForTest(t, rig, "foot_bank_02_ref.l")
	assertVecNearForTest(t, "inner bank head", inner.Head, pos(0.07, 0.03, 0))

	outerRight := mustBoneForTest(t, rig, "foot_bank_01_ref.r")
	assertVecNearForTest(t, "right outer bank head", outerRight.Head, pos(-0.13, 0.03, 0))
}

func TestSnapAnkleUsesFlattenedMetatarsalDirection(t *testing.T) {
	source := model.NewSkeleton(dazArmatureForTest)
	for _, bone := range []*model.Bone{
		model.NewBone("lFoot", pos(0, 0, 1.2), pos(0, 0.5, 1.1), 0),
		model.NewBone("lMetatarsals", pos(0, 0, 1), pos(0, 1, 1), 0),
		model.NewBone("lToe", pos(0, 1, 1), pos(0, 1.3, 1), 0),
		model.NewBone("lSmallToe4", pos(0.2, 1.1, 1), pos(0.2, 1.2, 1), 0),
		model.NewBone("lBigToe", pos(-0.1, 1.1, 1), pos(-0.1, 1.2, 1), 0),
	} {
		if err := source.Add(bone); err != nil {
			t.Fatalf("source add failed: %v", err)
		}
	}
	target := model.NewSkeleton(DefaultRigName)
	for _, bone := range []*model.Bone{
		model.NewBone("foot_ref.l", pos(0, 0, 0), pos(0, 1, 0), 0),
		model.NewBone("foot_heel_ref.l", pos(0, 0, 0.25), pos(0, 0.5, 0.25), 0),
		model.NewBone("foot_bank_01_ref.l", pos(0, 0, 0.1), pos(0, 0.5, 0.1), 0),
		model.NewBone("foot_bank_02_ref.l", pos(0, 0, 0.1), pos(0, 0.5, 0.1), 0),
	} {
		if err := target.Add(bone); err != nil {
			t.Fatalf("target add failed: %v", err)
		}
	}

	var rule mapping.SnapRule
	for _, candidate := range mapping.DefaultSnapRules() {
		if candidate.Target == "foot_ref.l" {
			rule = candidate
		}
	}
	warnings := SnapReferenceBones(target, source, []mapping.SnapRule{rule})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	heel := mustBoneForTest(t, target, "foot_heel_ref.l")
	assertVecNearForTest(t, "heel head", heel.Head, pos(0, -0.05, 0.25))
	assertVecNearForTest(t, "heel tail", heel.Tail, pos(0, 0.45, 0.25))

	foot := mustBoneForTest(t, target, "foot_ref.l")
	assertVecNearForTest(t, "foot tail", foot.Tail, pos(0, 1, 1))

	outer := mustBoneForTest(t, target, "foot_bank_01_ref.l")
	assertVecNearForTest(t, "outer bank", outer.Head, pos(0.205, -0.05, 0.1))
	inner := mustBoneForTest(t, target, "foot_bank_02_ref.l")
	assertVecNearForTest(t, "inner bank", inner.Head, pos(-0.11, -0.05, 0.1))
}

func TestSnapReferenceBonesIsDeterministicAndKeepsSource(t *testing.T) {
	source := newDazSkeletonForTest(t)
	before := map[string][2]r3.Vec{}
	for _, bone := range source.Bones() {
		before[bone.Name] = [2]r3.Vec{bone.Head, bone.Tail}
	}

	first, _ := snapRigForTest(t, source)
	second, _ := snapRigForTest(t, source)
	for _, bone := range first.Bones() {
		other := mustBoneForTest(t, second, bone.Name)
		if bone.Head != other.Head || bone.Tail != other.Tail || bone.Roll != other.Roll {
			t.Fatalf("snap result differs for %s", bone.Name)
		}
	}
	for name, ends := range before {
		current := mustBoneForTest(t, source, name)
		if ends[0] != current.Head || ends[1] != current.Tail {
			t.Fatalf("source bone %s was modified", name)
		}
	}
}

func TestSnapReferenceBonesWarnsMissingSourceAndContinues(t *testing.T) {
	source := withoutBoneForTest(t, newDazSkeletonForTest(t), "rPectoral")
	rig := newArpRigForTest(t, model.NewScene(), true)
	breast := mustBoneForTest(t, rig, "breast_ref.r")
	original := breast.Head

	warnings := SnapReferenceBones(rig, source, mapping.DefaultSnapRules())
	if len(warnings) != 1 {
		t.Fatalf("expected a single warning: got=%v", warnings)
	}
	if warnings[0].ID != model.WarningSourceBoneMissing || warnings[0].Subject != "rPectoral" {
		t.Fatalf("warning mismatch: %+v", warnings[0])
	}
	if breast.Head != original {
		t.Fatalf("breast reference should stay in place")
	}
	left := mustBoneForTest(t, rig, "breast_ref.l")
	assertVecNearForTest(t, "left breast head", left.Head, pos(0.08, -0.05, 1.3))
}

func TestSnapReferenceBonesWarnsMissingTarget(t *testing.T) {
	source := newDazSkeletonForTest(t)
	rig := newArpRigForTest(t, model.NewScene(), false)

	warnings := SnapReferenceBones(rig, source, mapping.DefaultSnapRules())
	if got := countWarningsForTest(warnings, model.WarningTargetBoneMissing); got != 2 {
		t.Fatalf("breast references should be reported missing: got=%d %v", got, warnings)
	}
}
