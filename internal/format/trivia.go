package format

import (
	"strings"

	"sgstyle/internal/pretty"
	"sgstyle/internal/token"
)

// boundary собирает документы для trivia токена i на границе элементов
// последовательности (файл, блок): хвостовые комментарии остаются на
// прежней строке, живёт максимум одна пустая строка, комментарии на
// своих строках сохраняют их. Последний элемент результата - всегда
// разделитель перед контентом (если он нужен).
func (p *printer) boundary(i uint32, hasPrev, atEOF bool) []*pretty.Doc {
	t := p.tree.TokenAt(i)
	if t == nil {
		return nil
	}
	p.took[i] = true

	var docs []*pretty.Doc
	pendingNL := 0
	sameLine := hasPrev
	for _, tr := range t.Leading {
		switch tr.Kind {
		case token.TriviaSpace:
		case token.TriviaNewline:
			pendingNL += len(tr.Text)
		case token.TriviaLineComment, token.TriviaBlockComment:
			if sameLine && pendingNL == 0 {
				// хвостовой комментарий прежней строки
				docs = append(docs, pretty.Text(" "), commentDoc(tr.Text))
			} else {
				if hasPrev || len(docs) > 0 {
					docs = append(docs, breakFor(pendingNL))
				}
				docs = append(docs, commentDoc(tr.Text))
			}
			pendingNL = 0
			sameLine = true
		}
	}
	if hasPrev || len(docs) > 0 {
		if atEOF {
			// файл заканчивается ровно одним переносом
			docs = append(docs, pretty.Hard())
		} else {
			docs = append(docs, breakFor(pendingNL))
		}
	}
	return docs
}

// inlineLeading renders not-yet-consumed comments of token i at a
// mid-construct position: block comments inline, line comments with a
// forced newline after them. Returns nil when there is nothing to emit.
func (p *printer) inlineLeading(i uint32) *pretty.Doc {
	t := p.tree.TokenAt(i)
	if t == nil || p.took[i] {
		return nil
	}
	p.took[i] = true
	if !t.HasLeadingComment() {
		return nil
	}
	var docs []*pretty.Doc
	for _, tr := range t.Leading {
		switch tr.Kind {
		case token.TriviaLineComment:
			docs = append(docs, pretty.Text(tr.Text), pretty.Hard())
		case token.TriviaBlockComment:
			docs = append(docs, commentDoc(tr.Text), pretty.Text(" "))
		}
	}
	return pretty.Concat(docs...)
}

// tok emits the token's text plus any comments still pending in its
// leading trivia. Comments come first, each followed by one space, so
// the form suits positions preceded by canonical whitespace.
func (p *printer) tok(i uint32) *pretty.Doc {
	t := p.tree.TokenAt(i)
	if t == nil {
		return nil
	}
	lead := p.inlineLeading(i)
	text := pretty.Text(t.Text)
	if lead == nil {
		return text
	}
	return pretty.Concat(lead, text)
}

// tokPre is the tok variant for punctuation written flush against the
// preceding content (запятая, точка с запятой, закрывающие скобки,
// точка, двоеточие). Pending comments go before the token, each
// prefixed with one space, so "a /* x */," keeps its shape.
func (p *printer) tokPre(i uint32) *pretty.Doc {
	t := p.tree.TokenAt(i)
	if t == nil {
		return nil
	}
	if p.took[i] || !t.HasLeadingComment() {
		p.took[i] = true
		return pretty.Text(t.Text)
	}
	p.took[i] = true
	var docs []*pretty.Doc
	for _, tr := range t.Leading {
		switch tr.Kind {
		case token.TriviaLineComment:
			docs = append(docs, pretty.Text(" "), pretty.Text(tr.Text), pretty.Hard())
		case token.TriviaBlockComment:
			docs = append(docs, pretty.Text(" "), commentDoc(tr.Text))
		}
	}
	docs = append(docs, pretty.Text(t.Text))
	return pretty.Concat(docs...)
}

func (p *printer) kindAt(i uint32) token.Kind {
	t := p.tree.TokenAt(i)
	if t == nil {
		return token.EOF
	}
	return t.Kind
}

func commentDoc(text string) *pretty.Doc {
	if strings.ContainsRune(text, '\n') {
		return pretty.Raw(text)
	}
	return pretty.Text(text)
}

func breakFor(newlines int) *pretty.Doc {
	if newlines >= 2 {
		return pretty.Blank()
	}
	return pretty.Hard()
}
