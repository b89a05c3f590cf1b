package tries

// WordDictionary stores words and matches patterns where '.' stands for any letter.
type WordDictionary struct {
	t *Trie
}

// NewWordDictionary returns an empty dictionary.
func NewWordDictionary() *WordDictionary {
	return &WordDictionary{t: NewTrie()}
}

// AddWord inserts word.
func (d *WordDictionary) AddWord(word string) error {
	return d.t.Insert(word)
}

// Search reports whether some stored word matches pattern.
func (d *WordDictionary) Search(pattern string) bool {
	return match(d.t.root, pattern)
}

func match(n *node, p string) bool {
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '.' {
			for _, child := range n.next {
				if child != nil && match(child, p[i+1:]) {
					return true
				}
			}
			return false
		}
		if c < 'a' || c > 'z' || n.next[c-'a'] == nil {
			return false
		}
		n = n.next[c-'a']
	}

	return n.end
}
