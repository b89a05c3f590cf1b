package tries

import "strings"

// ReplaceWords replaces every word of sentence by the shortest dictionary root
// that prefixes it.
func ReplaceWords(dictionary []string, sentence string) (string, error) {
	t := NewTrie()
	for _, root := range dictionary {
		if err := t.Insert(root); err != nil {
			return "", err
		}
	}

	words := strings.Fields(sentence)
	for i, w := range words {
		if root, ok := t.ShortestPrefix(w); ok {
			words[i] = root
		}
	}

	return strings.Join(words, " "), nil
}

// LongestWord returns the longest word in words that can be built one letter
// at a time by other words in words; ties go to the lexicographically smallest.
func LongestWord(words []string) (string, error) {
	t := NewTrie()
	for _, w := range words {
		if err := t.Insert(w); err != nil {
			return "", err
		}
	}

	best := ""
	var path []byte
	// depth-first over nodes that end a word; children in letter order keep
	// the first longest word the lexicographically smallest one
	var dfs func(n *node)
	dfs = func(n *node) {
		if len(path) > len(best) {
			best = string(path)
		}
		for c, child := range n.next {
			if child != nil && child.end {
				path = append(path, byte('a'+c))
				dfs(child)
				path = path[:len(path)-1]
			}
		}
	}
	dfs(t.root)

	return best, nil
}
