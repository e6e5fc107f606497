// 指示: miu200521358
// Package rigprovider は組み込みテンプレートからARPリグを生成する。
package rigprovider

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

//go:embed template.yaml
var defaultTemplateYAML []byte

const sideToken = "{Side}"

// Template はARPリグのテンプレート定義を表す。
type Template struct {
	Reference []ReferenceBoneSpec `yaml:"reference"`
	Generate  []GeneratedBoneSpec `yaml:"generate"`
}

// ReferenceBoneSpec は参照ボーン1本の定義を表す。
type ReferenceBoneSpec struct {
	Name      string    `yaml:"name"`
	Head      []float64 `yaml:"head"`
	Tail      []float64 `yaml:"tail"`
	Roll      float64   `yaml:"roll"`
	Parents   []string  `yaml:"parents"`
	Connected bool      `yaml:"connected"`
	// Spine/Neck は背骨/首の序数。0 は常に生成する。
	Spine  int    `yaml:"spine"`
	Neck   int    `yaml:"neck"`
	Option string `yaml:"option"`
}

// GeneratedBoneSpec は参照ボーンから生成する変形/制御ボーン1本の定義を表す。
type GeneratedBoneSpec struct {
	Name       string    `yaml:"name"`
	From       string    `yaml:"from"`
	Span       []float64 `yaml:"span"`
	Parents    []string  `yaml:"parents"`
	Connected  bool      `yaml:"connected"`
	Deform     bool      `yaml:"deform"`
	Collection string    `yaml:"collection"`
}

// resolvedReference は左右展開済みの参照ボーン定義を表す。
type resolvedReference struct {
	Name      string
	Head      r3.Vec
	Tail      r3.Vec
	Roll      float64
	Parents   []string
	Connected bool
	Spine     int
	Neck      int
	Option    string
}

// resolvedGenerated は左右展開済みの生成ボーン定義を表す。
type resolvedGenerated struct {
	Name       string
	From       string
	Start      float64
	End        float64
	Parents    []string
	Connected  bool
	Deform     bool
	Collection string
}

// LoadTemplate はYAMLテンプレートを読み込む。
func LoadTemplate(data []byte) (*Template, error) {
	template := &Template{}
	if err := yaml.Unmarshal(data, template); err != nil {
		return nil, fmt.Errorf("リグテンプレートの解析に失敗しました: %w", err)
	}
	if len(template.Reference) == 0 {
		return nil, fmt.Errorf("リグテンプレートに参照ボーンがありません")
	}
	for _, spec := range template.Reference {
		if strings.TrimSpace(spec.Name) == "" {
			return nil, fmt.Errorf("リグテンプレートに名前のない参照ボーンがあります")
		}
		if len(spec.Head) != 3 || len(spec.Tail) != 3 {
			return nil, fmt.Errorf("参照ボーン %s の head/tail は3要素で指定してください", spec.Name)
		}
	}
	for _, spec := range template.Generate {
		if strings.TrimSpace(spec.Name) == "" || strings.TrimSpace(spec.From) == "" {
			return nil, fmt.Errorf("生成ボーンの name/from は必須です: %+v", spec)
		}
		if len(spec.Span) != 0 && len(spec.Span) != 2 {
			return nil, fmt.Errorf("生成ボーン %s の span は2要素で指定してください", spec.Name)
		}
	}
	return template, nil
}

// DefaultTemplate は組み込みテンプレートを返す。
func DefaultTemplate() (*Template, error) {
	return LoadTemplate(defaultTemplateYAML)
}

// references は参照ボーン定義を左右展開して返す。左側の定義の後に右側の鏡像を置く。
func (t *Template) references() []resolvedReference {
	resolved := make([]resolvedReference, 0, len(t.Reference)*2)
	for _, spec := range t.Reference {
		for _, side := range specSides(spec.Name) {
			head := vec(spec.Head)
			tail := vec(spec.Tail)
			roll := spec.Roll
			if side == mapping.SideRight {
				head, tail, roll = mirror(head), mirror(tail), -roll
			}
			resolved = append(resolved, resolvedReference{
				Name:      mapping.ResolveArpTemplate(spec.Name, side),
				Head:      head,
				Tail:      tail,
				Roll:      roll,
				Parents:   resolveNames(spec.Parents, side),
				Connected: spec.Connected,
				Spine:     spec.Spine,
				Neck:      spec.Neck,
				Option:    spec.Option,
			})
		}
	}
	return resolved
}

// generated は生成ボーン定義を左右展開して返す。
func (t *Template) generated() []resolvedGenerated {
	resolved := make([]resolvedGenerated, 0, len(t.Generate)*2)
	for _, spec := range t.Generate {
		start, end := 0.0, 1.0
		if len(spec.Span) == 2 {
			start, end = spec.Span[0], spec.Span[1]
		}
		for _, side := range specSides(spec.Name) {
			resolved = append(resolved, resolvedGenerated{
				Name:       mapping.ResolveArpTemplate(spec.Name, side),
				From:       mapping.ResolveArpTemplate(spec.From, side),
				Start:      start,
				End:        end,
				Parents:    resolveNames(spec.Parents, side),
				Connected:  spec.Connected,
				Deform:     spec.Deform,
				Collection: spec.Collection,
			})
		}
	}
	return resolved
}

// specSides は名前テンプレートが左右を持つ場合は左右、持たない場合は中央のみを返す。
func specSides(name string) []mapping.Side {
	if strings.Contains(name, sideToken) {
		return mapping.BothSides
	}
	return []mapping.Side{mapping.SideCenter}
}

// resolveNames は名前テンプレートの一覧を指定側へ展開する。
func resolveNames(names []string, side mapping.Side) []string {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		resolved = append(resolved, mapping.ResolveArpTemplate(name, side))
	}
	return resolved
}

// vec は3要素スライスをベクトルへ変換する。
func vec(values []float64) r3.Vec {
	return r3.Vec{X: values[0], Y: values[1], Z: values[2]}
}

// mirror はX軸方向へ鏡像反転した位置を返す。
func mirror(v r3.Vec) r3.Vec {
	return r3.Vec{X: -v.X, Y: v.Y, Z: v.Z}
}
