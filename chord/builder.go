package chord

import "golang.org/x/exp/slices"

type fillOption int

const (
	fillSeventh fillOption = 1 << iota
	fillNinth
	fillEleventh
)

// builder stages the parts of one chord type while a symbol is parsed.
type builder struct {
	Parts
}

func newBuilder() *builder {
	return &builder{Parts{Third: ThirdMajor, Fifth: FifthPerfect}}
}

// fill supplies a dominant seventh and natural lower extensions for each
// requested option that is still missing.
func (b *builder) fill(opts fillOption) {
	if opts&fillSeventh != 0 && b.Seventh == SeventhNone {
		b.Seventh = SeventhDominant
	}
	if opts&fillNinth != 0 {
		b.addExtensionIfAbsent(Ninth)
	}
	if opts&fillEleventh != 0 {
		b.addExtensionIfAbsent(Eleventh)
	}
}

func (b *builder) addExtension(e Extension) {
	b.Extensions = append(b.Extensions, e)
}

func (b *builder) addExtensionIfAbsent(t ExtensionType) {
	if slices.IndexFunc(b.Extensions, func(e Extension) bool { return e.Type == t }) >= 0 {
		return
	}
	b.addExtension(Extension{Type: t})
}

func (b *builder) removeExtensions(t ExtensionType) {
	kept := b.Extensions[:0]
	for _, e := range b.Extensions {
		if e.Type != t {
			kept = append(kept, e)
		}
	}
	b.Extensions = kept
}

func (b *builder) build() ChordType {
	return New(b.Parts)
}
