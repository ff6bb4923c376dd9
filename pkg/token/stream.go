package token

// Stream is a read cursor over a scanned token slice. The slice must end
// with an EOF token; the cursor never advances past it.
type Stream struct {
	tokens  []Token
	current int
}

func NewStream(tokens []Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: EOF, Line: line})
	}

	return &Stream{tokens: tokens}
}

func (s *Stream) Peek() Token {
	return s.tokens[s.current]
}

// Advance consumes the current token and returns it.
func (s *Stream) Advance() Token {
	if !s.IsAtEnd() {
		s.current++
	}

	return s.Previous()
}

// Previous returns the most recently consumed token, or the first token
// when nothing has been consumed yet.
func (s *Stream) Previous() Token {
	if s.current == 0 {
		return s.tokens[0]
	}

	return s.tokens[s.current-1]
}

func (s *Stream) IsAtEnd() bool {
	return s.Peek().Type == EOF
}
