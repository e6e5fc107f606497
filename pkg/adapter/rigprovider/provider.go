// 指示: miu200521358
package rigprovider

import (
	"errors"
	"fmt"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	optionBreast = "breast"
	optionToes   = "toes"

	// ReferenceCollection は参照ボーンのボーンコレクション名。
	ReferenceCollection = "reference"
	// DeformCollection は生成した変形ボーンの既定ボーンコレクション名。
	DeformCollection = "deform"
)

// ErrTemplateUnavailable はテンプレートが読み込まれていないことを表す。
var ErrTemplateUnavailable = errors.New("rig template is unavailable")

// TemplateRigProvider はテンプレート定義からARPリグを生成する。
type TemplateRigProvider struct {
	template *Template
	loadErr  error
}

// NewTemplateRigProvider は組み込みテンプレートを使うリグ生成器を返す。
// テンプレートの読み込みに失敗した場合は Available がエラーを返す。
func NewTemplateRigProvider() *TemplateRigProvider {
	template, err := DefaultTemplate()
	return &TemplateRigProvider{template: template, loadErr: err}
}

// NewTemplateRigProviderWith は指定テンプレートを使うリグ生成器を返す。
func NewTemplateRigProviderWith(template *Template) *TemplateRigProvider {
	return &TemplateRigProvider{template: template}
}

// Available はテンプレートが利用可能か検査する。
func (p *TemplateRigProvider) Available() error {
	if p.loadErr != nil {
		return fmt.Errorf("%w: %v", ErrTemplateUnavailable, p.loadErr)
	}
	if p.template == nil {
		return ErrTemplateUnavailable
	}
	return nil
}

// AppendReferenceRig は参照ボーンのみのアーマチュアを生成してシーンへ追加する。同名のアーマチュアは置き換える。
func (p *TemplateRigProvider) AppendReferenceRig(scene *model.Scene, options moutput.RigOptions) (*model.Skeleton, error) {
	if err := p.Available(); err != nil {
		return nil, err
	}
	if scene == nil {
		return nil, fmt.Errorf("追加先シーンが未設定です")
	}
	if options.Name == "" {
		return nil, fmt.Errorf("リグ名が未指定です")
	}
	if options.SpineCount < 1 || options.NeckCount < 1 {
		return nil, fmt.Errorf("背骨/首の本数は1以上を指定してください: spine=%d neck=%d", options.SpineCount, options.NeckCount)
	}

	references := p.template.references()
	if limit := maxOrdinal(references, func(r resolvedReference) int { return r.Spine }); options.SpineCount-1 > limit {
		return nil, fmt.Errorf("背骨の本数 %d はテンプレートの上限 %d を超えています", options.SpineCount, limit+1)
	}
	if limit := maxOrdinal(references, func(r resolvedReference) int { return r.Neck }); options.NeckCount-1 > limit {
		return nil, fmt.Errorf("首の本数 %d はテンプレートの上限 %d を超えています", options.NeckCount, limit+1)
	}

	rig := model.NewSkeleton(options.Name)
	for _, spec := range references {
		if !includeReference(spec, options) {
			continue
		}
		bone := model.NewBone(spec.Name, spec.Head, spec.Tail, spec.Roll)
		bone.Deform = false
		bone.Collection = ReferenceCollection
		bone.Parent = firstExisting(rig, spec.Parents)
		bone.Connected = spec.Connected && bone.Parent != ""
		if err := rig.Add(bone); err != nil {
			return nil, fmt.Errorf("参照ボーン %s の追加に失敗しました: %w", spec.Name, err)
		}
	}
	scene.AddArmature(rig)
	return rig, nil
}

// MatchToRig は参照ボーンの位置から変形/制御ボーンを生成する。既に存在するボーンは位置のみ更新する。
func (p *TemplateRigProvider) MatchToRig(rig *model.Skeleton) error {
	if err := p.Available(); err != nil {
		return err
	}
	if rig == nil {
		return fmt.Errorf("リグが未設定です")
	}
	for _, spec := range p.template.generated() {
		reference, err := rig.Get(spec.From)
		if err != nil {
			continue
		}
		head := lerp(reference.Head, reference.Tail, spec.Start)
		tail := lerp(reference.Head, reference.Tail, spec.End)

		if existing, err := rig.Get(spec.Name); err == nil {
			existing.Head = head
			existing.Tail = tail
			existing.Roll = reference.Roll
			continue
		}

		bone := model.NewBone(spec.Name, head, tail, reference.Roll)
		bone.Deform = spec.Deform
		bone.Collection = spec.Collection
		if bone.Collection == "" {
			bone.Collection = DeformCollection
		}
		bone.Parent = firstExisting(rig, spec.Parents)
		bone.Connected = spec.Connected && bone.Parent != ""
		if err := rig.Add(bone); err != nil {
			return fmt.Errorf("生成ボーン %s の追加に失敗しました: %w", spec.Name, err)
		}
	}
	return nil
}

// includeReference はオプションに従って参照ボーンを生成するか判定する。
func includeReference(spec resolvedReference, options moutput.RigOptions) bool {
	if spec.Spine > 0 && spec.Spine > options.SpineCount-1 {
		return false
	}
	if spec.Neck > 0 && spec.Neck > options.NeckCount-1 {
		return false
	}
	switch spec.Option {
	case optionBreast:
		return options.Breast
	case optionToes:
		return options.Toes
	}
	return true
}

// maxOrdinal は参照ボーン定義の序数の最大値を返す。
func maxOrdinal(references []resolvedReference, ordinal func(resolvedReference) int) int {
	highest := 0
	for _, reference := range references {
		if value := ordinal(reference); value > highest {
			highest = value
		}
	}
	return highest
}

// firstExisting は候補のうち最初に存在するボーン名を返す。
func firstExisting(rig *model.Skeleton, candidates []string) string {
	for _, name := range candidates {
		if rig.Contains(name) {
			return name
		}
	}
	return ""
}

// lerp は head から tail への線形補間位置を返す。
func lerp(head r3.Vec, tail r3.Vec, t float64) r3.Vec {
	return r3.Add(head, r3.Scale(t, r3.Sub(tail, head)))
}
