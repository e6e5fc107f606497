// 指示: miu200521358
package io_scene

import (
	"fmt"
	"os"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"gopkg.in/yaml.v3"
)

// LoadCorrespondence はDaz名→ARP名の対応表ファイルを読み込む。
// 記述順を対応表の登録順として保持するため、JSONもYAMLノードとして解析する。
func LoadCorrespondence(path string) (*mapping.Correspondence, error) {
	if !isYamlPath(path) && !isJsonPath(path) {
		return nil, newIoExtInvalid(path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newIoFileNotFound(path, err)
		}
		return nil, newIoParseFailed(path, "対応表ファイルの読み取りに失敗しました", err)
	}
	correspondence, err := ParseCorrespondence(b)
	if err != nil {
		return nil, newIoParseFailed(path, "対応表の解析に失敗しました", err)
	}
	return correspondence, nil
}

// ParseCorrespondence は対応表文書を解析する。
// ルートは名前→名前のマッピング、または bones キー配下のマッピングを受け付ける。
func ParseCorrespondence(data []byte) (*mapping.Correspondence, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("対応表が空です")
	}
	node := root.Content[0]
	if bones := mappingValue(node, "bones"); bones != nil {
		node = bones
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("対応表はマッピングで記述してください: line=%d", node.Line)
	}

	entries := make([]mapping.CorrespondenceEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("対応はボーン名の組で記述してください: line=%d", key.Line)
		}
		entries = append(entries, mapping.CorrespondenceEntry{Source: key.Value, Target: value.Value})
	}
	return mapping.NewCorrespondence(entries)
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.MappingNode {
			return node.Content[i+1]
		}
	}
	return nil
}
