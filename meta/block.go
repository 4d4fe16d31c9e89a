package meta

import "greg-hacke/jpeg-forensics/tags"

// NamedView resolves tags by descriptive label, in decode order
type NamedView struct {
	tags  []Tag
	order []int
	index map[string]int
}

// Resolve returns the tag stored under label. It never panics, whatever
// the label.
func (v NamedView) Resolve(label string) Optional[Tag] {
	if i, ok := v.index[label]; ok {
		return Some(v.tags[i])
	}
	return None[Tag]()
}

// Len returns the number of fields
func (v NamedView) Len() int {
	return len(v.order)
}

// Tags returns every field in decode order
func (v NamedView) Tags() []Tag {
	out := make([]Tag, 0, len(v.order))
	for _, i := range v.order {
		out = append(out, v.tags[i])
	}
	return out
}

// CodedView resolves tags by numeric code
type CodedView struct {
	tags  []Tag
	index map[tags.Code]int
}

// Resolve returns the tag stored under code
func (v CodedView) Resolve(code tags.Code) Optional[Tag] {
	if i, ok := v.index[code]; ok {
		return Some(v.tags[i])
	}
	return None[Tag]()
}

// Len returns the number of fields
func (v CodedView) Len() int {
	return len(v.index)
}

// Block is the decoded metadata of one image. Both views are indexes over
// the same decoded tags. A stripped block has an empty NamedView and no
// CodedView.
type Block struct {
	stripped bool
	named    NamedView
	coded    CodedView
}

// NewBlock indexes decoded tags. The first occurrence of a label or code
// wins; pseudo fields are reachable by label only.
func NewBlock(decoded []Tag) *Block {
	all := append([]Tag(nil), decoded...)
	named := NamedView{tags: all, index: make(map[string]int, len(all))}
	coded := CodedView{tags: all, index: make(map[tags.Code]int, len(all))}

	for i, t := range all {
		if _, dup := named.index[t.Label]; !dup {
			named.index[t.Label] = i
			named.order = append(named.order, i)
		}
		if t.pseudo {
			continue
		}
		if _, dup := coded.index[t.Code()]; !dup {
			coded.index[t.Code()] = i
		}
	}

	return &Block{named: named, coded: coded}
}

// StrippedBlock describes an image whose EXIF segment is gone
func StrippedBlock() *Block {
	return &Block{stripped: true}
}

// Stripped reports whether the coded metadata is absent
func (b *Block) Stripped() bool {
	return b.stripped
}

// Named returns the label-keyed view
func (b *Block) Named() NamedView {
	return b.named
}

// Coded returns the code-keyed view, absent for stripped images
func (b *Block) Coded() Optional[CodedView] {
	if b.stripped {
		return None[CodedView]()
	}
	return Some(b.coded)
}

// ByName resolves a label against the NamedView
func (b *Block) ByName(label string) Optional[Tag] {
	return b.named.Resolve(label)
}

// ByCode resolves a code against the CodedView
func (b *Block) ByCode(code tags.Code) Optional[Tag] {
	if b.stripped {
		return None[Tag]()
	}
	return b.coded.Resolve(code)
}
