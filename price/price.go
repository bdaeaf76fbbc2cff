// Package price formata valores monetários de acordo com locale e moeda.
package price

import (
	"math"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Missing é o texto exibido quando não há preço.
const Missing = "-"

var defaultLocale = language.BrazilianPortuguese

// layout diz de que lado do número fica o símbolo e se há espaço entre eles.
type layout struct {
	after bool
	space bool
}

var (
	prefixTight  = layout{}
	prefixSpaced = layout{space: true}
	suffixSpaced = layout{after: true, space: true}
)

// languageLayouts segue o padrão de moeda do CLDR para cada idioma.
var languageLayouts = map[string]layout{
	"en": prefixTight,
	"ja": prefixTight,
	"ko": prefixTight,
	"zh": prefixTight,
	"pt": prefixSpaced,
	"nl": prefixSpaced,
	"cs": suffixSpaced,
	"da": suffixSpaced,
	"de": suffixSpaced,
	"es": suffixSpaced,
	"fi": suffixSpaced,
	"fr": suffixSpaced,
	"it": suffixSpaced,
	"nb": suffixSpaced,
	"pl": suffixSpaced,
	"ru": suffixSpaced,
	"sv": suffixSpaced,
}

// regionLayouts sobrescreve languageLayouts quando a região muda o padrão.
var regionLayouts = map[string]layout{
	"de-CH":  prefixSpaced,
	"es-419": prefixTight,
	"es-MX":  prefixTight,
	"es-US":  prefixTight,
	"pt-PT":  suffixSpaced,
}

// layoutFor usa prefixo com espaço (o padrão pt-BR) para idiomas fora da tabela.
func layoutFor(tag language.Tag) layout {
	base, _ := tag.Base()
	region, _ := tag.Region()
	if l, ok := regionLayouts[base.String()+"-"+region.String()]; ok {
		return l
	}
	if l, ok := languageLayouts[base.String()]; ok {
		return l
	}
	return prefixSpaced
}

// Formatter é derivado de (locale, moeda) e pode ser reutilizado.
type Formatter struct {
	printer *message.Printer
	symbol  string
	scale   int
	layout  layout
}

// NewFormatter resolve símbolo e casas decimais da moeda para o locale.
// Locale inválido cai para pt-BR; moeda desconhecida usa o próprio código
// em maiúsculas como símbolo e duas casas.
func NewFormatter(locale, code string) Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = defaultLocale
	}
	p := message.NewPrinter(tag)
	l := layoutFor(tag)

	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{printer: p, symbol: code, scale: 2, layout: l}
	}
	scale, _ := currency.Standard.Rounding(unit)
	return Formatter{
		printer: p,
		symbol:  p.Sprint(currency.Symbol(unit)),
		scale:   scale,
		layout:  l,
	}
}

// Format devolve "-" para nil. Caso contrário posiciona o símbolo conforme o
// locale, com o sinal de menos à frente de tudo: 10 em BRL/pt-BR vira
// "R$ 10,00", em USD/en-US "$10.00", em EUR/de-DE "10,00 €".
func (f Formatter) Format(value *float64) string {
	if value == nil {
		return Missing
	}
	v, sign := *value, ""
	if math.Signbit(v) {
		v, sign = -v, "-"
	}
	n := f.printer.Sprint(number.Decimal(v, number.Scale(f.scale)))
	if f.symbol == "" {
		return sign + n
	}

	sep := ""
	if f.layout.space {
		sep = " "
	}
	if f.layout.after {
		return sign + n + sep + f.symbol
	}
	return sign + f.symbol + sep + n
}

// Format é o atalho sem memoização.
func Format(value *float64, code, locale string) string {
	return NewFormatter(locale, code).Format(value)
}

// Memo guarda o último Formatter e só o recalcula quando locale ou moeda mudam.
// O valor zero está pronto para uso.
type Memo struct {
	mu       sync.Mutex
	locale   string
	code     string
	current  *Formatter
	computed int
}

// Use devolve o Formatter para (locale, moeda), reaproveitando o anterior
// quando as entradas são as mesmas.
func (m *Memo) Use(locale, code string) Formatter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.locale == locale && m.code == code {
		return *m.current
	}
	f := NewFormatter(locale, code)
	m.current, m.locale, m.code = &f, locale, code
	m.computed++
	return f
}

func (m *Memo) Format(value *float64, code, locale string) string {
	return m.Use(locale, code).Format(value)
}

// Computations devolve quantas vezes o Formatter foi derivado.
func (m *Memo) Computations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.computed
}
