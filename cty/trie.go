package cty

import "strings"

// prefixTrie is a read-only trie over CTY keys for longest-prefix matching:
// walk the callsign bytes from the root and remember the last terminal node
// seen. Nodes live in a slice so child links are small integer indices.
type prefixTrie struct {
	nodes []trieNode
}

type trieNode struct {
	next     map[byte]int
	terminal string
}

func buildTrie(keys []string) prefixTrie {
	tr := prefixTrie{nodes: []trieNode{{next: make(map[byte]int)}}}
	for _, key := range keys {
		if key == "" {
			continue
		}
		state := 0
		for i := 0; i < len(key); i++ {
			ch := key[i]
			next := tr.nodes[state].next
			if next == nil {
				next = make(map[byte]int)
				tr.nodes[state].next = next
			}
			child, ok := next[ch]
			if !ok {
				child = len(tr.nodes)
				tr.nodes = append(tr.nodes, trieNode{})
				next[ch] = child
			}
			state = child
		}
		tr.nodes[state].terminal = key
	}
	return tr
}

func (tr *prefixTrie) longestPrefix(call string) (string, bool) {
	if tr == nil || len(tr.nodes) == 0 || call == "" {
		return "", false
	}
	state := 0
	best := ""
	for i := 0; i < len(call); i++ {
		next := tr.nodes[state].next
		if next == nil {
			break
		}
		child, ok := next[call[i]]
		if !ok {
			break
		}
		state = child
		if tr.nodes[state].terminal != "" {
			best = tr.nodes[state].terminal
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// portableSuffixes are stripped before lookup so "DL1ABC/P" resolves like
// "DL1ABC".
var portableSuffixes = []string{"/QRP", "/P", "/M", "/MM", "/AM"}

func normalizeCallsign(call string) string {
	call = strings.ToUpper(strings.TrimSpace(call))
	for _, suf := range portableSuffixes {
		if strings.HasSuffix(call, suf) {
			return strings.TrimSuffix(call, suf)
		}
	}
	return call
}
