package mock

import "github.com/fwojciec/linkscrape"

var _ linkscrape.TokenReader = (*TokenReader)(nil)

// TokenReader is a mock implementation of linkscrape.TokenReader.
type TokenReader struct {
	TokenFn    func() (linkscrape.Token, error)
	PositionFn func() linkscrape.Position
}

func (r *TokenReader) Token() (linkscrape.Token, error) {
	return r.TokenFn()
}

func (r *TokenReader) Position() linkscrape.Position {
	if r.PositionFn == nil {
		return linkscrape.Position{Line: 1}
	}
	return r.PositionFn()
}
