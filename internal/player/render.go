package player

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-clicker/internal/display"
	"github.com/pixil98/go-clicker/internal/game"
)

var templateFuncs = func() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["score"] = display.Score
	funcs["amount"] = display.Amount
	return funcs
}()

var (
	scoreTemplate = mustParse("score", `You generated {{ score .CurrentScore }} lines of code`)

	shopTemplate = mustParse("shop", `{{ "Shop" | upper }}
{{ repeat 44 "-" }}
{{- range $i, $item := .AvailableItems }}
{{ printf "%2d" (add1 $i) }}. {{ printf "%-12s" $item.Name }} {{ printf "%12s" (amount $item.Price) }}  +{{ amount $item.IncomeRate }}/tick{{ if not ($.CanAfford $item) }}  [locked]{{ end }}
{{- else }}
The shop has nothing for sale.
{{- end }}`)

	ownedTemplate = mustParse("owned", `{{ "Your items" | upper }}
{{ repeat 44 "-" }}
{{- range .OwnedItems }}
  {{ .Name }}
{{- else }}
  You don't own anything yet.
{{- end }}
Income: {{ amount .Income }} lines per tick`)

	helpTemplate = mustParse("help", `Commands:
{{- range . }}
  {{ printf "%-14s" .Usage }} {{ .Help }}
{{- end }}`)
)

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

// render expands tmpl and wraps the result to the display width.
func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}
	return display.Wrap(buf.String()), nil
}

func renderScore(st game.State) (string, error) {
	return render(scoreTemplate, st)
}
