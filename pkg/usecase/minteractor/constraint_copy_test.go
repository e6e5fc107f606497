// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

func TestCopyRotationLimitsUsesLimitBases(t *testing.T) {
	source := newDazSkeletonForTest(t)
	rig := newArpRigForTest(t, model.NewScene(), false)
	collector := NewReportCollector(nil)

	result := CopyRotationLimits(rig, source, mapping.DefaultLimitBases(), collector)
	if len(result.Copied) != 2 || result.Copied["c_arm_fk.l"] != 1 || result.Copied["c_forearm_fk.l"] != 1 {
		t.Fatalf("copied mismatch: %v", result.Copied)
	}

	arm := mustBoneForTest(t, rig, "c_arm_fk.l")
	if len(arm.Constraints) != 1 || !arm.Constraints[0].IsRotationLimit() {
		t.Fatalf("arm constraint mismatch: %+v", arm.Constraints)
	}
	limit := arm.Constraints[0].Limit
	sourceLimit := mustBoneForTest(t, source, "lShldrBend").Constraints[0].Limit
	if limit.Axes != sourceLimit.Axes || limit.EulerOrder != model.EULER_YZX || !limit.UseTransformLimit {
		t.Fatalf("limit values mismatch: %+v", limit)
	}
	if limit.OwnerSpace != model.SPACE_LOCAL {
		t.Fatalf("owner space should be copied: %s", limit.OwnerSpace)
	}
	if limit == sourceLimit {
		t.Fatalf("limit should not be shared with the source")
	}

	forearm := mustBoneForTest(t, rig, "c_forearm_fk.l")
	if got := forearm.Constraints[0].Limit.OwnerSpace; got != model.SPACE_WORLD {
		t.Fatalf("frame based limit should keep the default owner space: %s", got)
	}
	if collector.CountByID(model.WarningLimitFrameUnsupported) != 1 || collector.Count(moutput.ReportLevelInfo) != 1 {
		t.Fatalf("frame note mismatch: %v", collector.Entries())
	}
}

func TestCopyRotationLimitsOverwritesSameName(t *testing.T) {
	source := newDazSkeletonForTest(t)
	rig := newArpRigForTest(t, model.NewScene(), false)
	bases := mapping.DefaultLimitBases()

	CopyRotationLimits(rig, source, bases, nil)
	sourceLimit := mustBoneForTest(t, source, "lShldrBend").Constraints[0].Limit
	sourceLimit.Axes[0].Max = 1.0
	CopyRotationLimits(rig, source, bases, nil)

	arm := mustBoneForTest(t, rig, "c_arm_fk.l")
	if len(arm.Constraints) != 1 {
		t.Fatalf("repeated copy should overwrite: %d constraints", len(arm.Constraints))
	}
	if arm.Constraints[0].Limit.Axes[0].Max != 1.0 {
		t.Fatalf("limit should follow the source: %+v", arm.Constraints[0].Limit.Axes[0])
	}
}

func TestCopyRotationLimitsFallsBackToSameName(t *testing.T) {
	source := model.NewSkeleton(dazArmatureForTest)
	skirt := model.NewBone("skirt_front", pos(0, 0, 1), pos(0, 0, 0.8), 0)
	constraint := model.NewRotationLimitConstraint("Limit Rotation")
	constraint.Limit.Axes[1] = model.AxisLimit{Use: true, Min: -0.1, Max: 0.1}
	skirt.Constraints = append(skirt.Constraints, constraint,
		&model.Constraint{Name: "Damped Track", Type: model.CONSTRAINT_DAMPED_TRACK})
	if err := source.Add(skirt); err != nil {
		t.Fatalf("source add failed: %v", err)
	}
	target := model.NewSkeleton(DefaultRigName)
	if err := target.Add(model.NewBone("skirt_front", pos(0, 0, 1), pos(0, 0, 0.8), 0)); err != nil {
		t.Fatalf("target add failed: %v", err)
	}
	if err := target.Add(model.NewBone("c_tail", pos(0, 0, 1), pos(0, 0.1, 1), 0)); err != nil {
		t.Fatalf("target add failed: %v", err)
	}

	result := CopyRotationLimits(target, source, mapping.LimitBases{}, nil)
	if len(result.Order) != 1 || result.Order[0] != "skirt_front" {
		t.Fatalf("order mismatch: %v", result.Order)
	}
	copied := mustBoneForTest(t, target, "skirt_front")
	if len(copied.Constraints) != 1 || copied.Constraints[0].Limit.Axes[1].Max != 0.1 {
		t.Fatalf("only the rotation limit should be copied: %+v", copied.Constraints)
	}
}
