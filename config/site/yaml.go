package site

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML keeps the declaration order of the platform set. Keys outside
// the set follow, sorted, so an invalid document still round-trips.
func (c Contacts) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	keys := make([]string, 0, len(c))
	for _, p := range platforms {
		if _, ok := c[p]; ok {
			keys = append(keys, p)
		}
	}
	keys = append(keys, c.unknownKeys()...)

	for _, k := range keys {
		key := &yaml.Node{}
		if err := key.Encode(k); err != nil {
			return nil, err
		}
		value := &yaml.Node{}
		if err := value.Encode(c[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

func (m Menu) MarshalYAML() (any, error) {
	if m == nil {
		return nil, nil
	}
	return []MenuItem(m), nil
}
