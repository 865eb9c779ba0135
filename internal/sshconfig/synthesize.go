package sshconfig

import "github.com/imamik/podssh/internal/inventory"

// Template holds the fields applied to every block.
type Template struct {
	User         string
	IdentityFile string
}

// Collision records a block whose values were replaced by a later endpoint
// with the same name.
type Collision struct {
	Name     string    `json:"name"`
	Previous HostBlock `json:"previous"`
	Current  HostBlock `json:"current"`
}

// Synthesize converts endpoints, in inventory order, into a Document.
//
// Last write wins on values, first seen wins on position.
func Synthesize(endpoints []inventory.Endpoint, tmpl Template) (*Document, []Collision) {
	doc := &Document{}
	index := make(map[string]int, len(endpoints))
	var collisions []Collision

	for _, ep := range endpoints {
		block := HostBlock{
			Name:         ep.Name,
			Hostname:     ep.Address,
			Port:         ep.Port,
			User:         tmpl.User,
			IdentityFile: tmpl.IdentityFile,
		}

		if i, ok := index[ep.Name]; ok {
			collisions = append(collisions, Collision{
				Name:     ep.Name,
				Previous: doc.Blocks[i],
				Current:  block,
			})
			doc.Blocks[i] = block
			continue
		}

		index[ep.Name] = len(doc.Blocks)
		doc.Blocks = append(doc.Blocks, block)
	}

	return doc, collisions
}
