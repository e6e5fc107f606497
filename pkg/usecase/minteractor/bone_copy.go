// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// CopiedBoneCollection は複製したDazボーンを配置するボーンコレクション名。
const CopiedBoneCollection = "daz_bones"

// CopyRoot は複製対象の部分木と、その親にするARPボーンの組を表す。
type CopyRoot struct {
	Attachment string
	Root       string
}

// CopyResult は構造コピーの結果を表す。
type CopyResult struct {
	Roots  []CopyRoot
	Copied []string
	// Renamed は名前衝突で別名になったDazボーン名と複製後の名前の組を複製順で表す。
	Renamed []mapping.CorrespondenceEntry
}

// copyFrame は探索スタックの1要素を表す。
type copyFrame struct {
	name       string
	attachment string
}

// CollectCopyRoots はDaz胴体の2つの根から深さ優先で探索し、対応表にないボーンを複製起点として返す。
// 対応表にあるボーンは次の接続先となり、その子孫の探索を続ける。
func CollectCopyRoots(
	source *model.Skeleton,
	correspondence *mapping.Correspondence,
	roots []string,
	ignored map[string]struct{},
	reporter moutput.IReporter,
) []CopyRoot {
	pairs := make([]CopyRoot, 0)
	visited := map[string]struct{}{}
	for _, rootName := range roots {
		if !source.Contains(rootName) {
			report(reporter, newWarning(model.WarningSourceBoneMissing, rootName,
				"構造コピーの起点ボーンが見つかりません: %s", rootName))
			continue
		}
		stack := []copyFrame{{name: rootName}}
		for len(stack) > 0 {
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, done := visited[frame.name]; done {
				continue
			}
			visited[frame.name] = struct{}{}

			if _, skip := ignored[frame.name]; skip {
				continue
			}
			attachment, mapped := correspondence.Target(frame.name)
			if !mapped {
				pairs = append(pairs, CopyRoot{Attachment: frame.attachment, Root: frame.name})
				continue
			}
			children := source.Children(frame.name)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, copyFrame{name: children[i].Name, attachment: attachment})
			}
		}
	}
	return pairs
}

// CopyUnmappedBones は対応表にないDazボーンの部分木を、直近の対応済み祖先に当たるARPボーンの下へ複製する。
// 複製順はDaz骨格の深さ優先順とし、既存名と衝突した場合は ".001" 形式の連番を付けて複製する。
func CopyUnmappedBones(
	target *model.Skeleton,
	source *model.Skeleton,
	correspondence *mapping.Correspondence,
	reporter moutput.IReporter,
) CopyResult {
	result := CopyResult{}
	if target == nil || source == nil || correspondence == nil {
		return result
	}
	result.Roots = CollectCopyRoots(source, correspondence, mapping.CopyRoots(), mapping.CopyIgnored(), reporter)
	renamed := map[string]string{}

	for _, pair := range result.Roots {
		attachment := pair.Attachment
		if attachment != "" && !target.Contains(attachment) {
			report(reporter, newWarning(model.WarningTargetBoneMissing, attachment,
				"接続先のARPボーンが見つからないため %s をルートとして複製します", pair.Root))
			attachment = ""
		}
		err := source.Walk(pair.Root, func(bone *model.Bone) bool {
			copied := duplicateBone(target, bone, attachment, pair.Root, renamed)
			if copied.Name != bone.Name {
				renamed[bone.Name] = copied.Name
				result.Renamed = append(result.Renamed, mapping.CorrespondenceEntry{Source: bone.Name, Target: copied.Name})
				report(reporter, newWarning(model.WarningBoneNameCollision, bone.Name,
					"ボーン名が重複したため %s として複製しました", copied.Name))
			}
			if err := target.Add(copied); err != nil {
				report(reporter, newWarning(model.WarningBoneNameCollision, bone.Name,
					"ボーン複製に失敗しました: %v", err))
				return false
			}
			result.Copied = append(result.Copied, copied.Name)
			return true
		})
		if err != nil {
			report(reporter, newWarning(model.WarningSourceBoneMissing, pair.Root,
				"部分木の走査に失敗しました: %v", err))
		}
	}
	return result
}

// duplicateBone はDazボーンの複製を作成する。親名は複製後の名前へ付け替える。
func duplicateBone(
	target *model.Skeleton,
	bone *model.Bone,
	attachment string,
	root string,
	renamed map[string]string,
) *model.Bone {
	copied := bone.Copy()
	copied.Name = target.UniqueName(bone.Name)
	copied.Collection = CopiedBoneCollection
	if bone.Name == root {
		copied.Parent = attachment
		return copied
	}
	if name, ok := renamed[bone.Parent]; ok {
		copied.Parent = name
	}
	return copied
}

// FixGeneratedDeformBones はDaz側に対応元を持たない生成済み変形ボーンの変形フラグを外す。
// 複製したDazボーンは対象外とする。
func FixGeneratedDeformBones(target *model.Skeleton, correspondence *mapping.Correspondence) []string {
	fixed := make([]string, 0)
	if target == nil || correspondence == nil {
		return fixed
	}
	for _, bone := range target.Bones() {
		if !bone.Deform || bone.Collection == CopiedBoneCollection {
			continue
		}
		if correspondence.HasTarget(bone.Name) {
			continue
		}
		bone.Deform = false
		fixed = append(fixed, bone.Name)
	}
	return fixed
}
