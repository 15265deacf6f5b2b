package web

import (
	"html/template"
	"io"

	"github.com/aliskhannn/quiz-runner/internal/service"
)

var page = template.Must(template.New("quiz").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Quiz</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; }
.opt { display: block; margin: .4rem 0; }
.ok { color: #1a7f37; font-weight: 600; }
.bad { color: #cf222e; font-weight: 600; }
.muted { color: #57606a; }
.small { font-size: .9rem; }
.controls button { margin-right: .5rem; }
</style>
</head>
<body>
<div id="status" class="muted">{{.Status}}</div>
<div id="progress" class="muted">{{.Progress}}</div>
<h2 id="question">{{.Question}}</h2>
{{if .Error}}<div class="muted small">Detail: {{.Error}}</div>{{end}}
<form id="answer" method="post" action="/answer">
<div id="options">
{{range $i, $opt := .Options}}<label class="opt" for="opt_{{$i}}"><input type="radio" name="option" id="opt_{{$i}}" value="{{$opt.Index}}"{{if $opt.Checked}} checked{{end}}{{if $.InputsDisabled}} disabled{{end}} required> {{$opt.Text}}</label>
{{end}}</div>
</form>
<div id="result">
{{with .Result}}{{if .Correct}}<span class="ok">Correct</span>{{else}}<span class="bad">Incorrect</span>
<div class="muted small">Correct answer: <strong>{{.CorrectText}}</strong></div>{{end}}{{end}}
{{if .FinalScore}}<div><strong>{{.FinalScore}}</strong></div>{{end}}
</div>
{{if .Explanation}}<div id="explanation">{{.Explanation}}</div>{{end}}
<p class="small">Score: <span id="score">{{.Score}}</span> · Answered: <span id="answered">{{.Answered}}</span> · Total: <span id="total">{{.Total}}</span> · Fails: <span id="fails">{{.Failed}}</span></p>
<div class="controls">
<button form="answer" type="submit"{{if .InputsDisabled}} disabled{{end}}>Answer</button>
<form method="post" action="/prev" style="display:inline"><button type="submit"{{if not .Controls.Prev}} disabled{{end}}>Previous</button></form>
<form method="post" action="/next" style="display:inline"><button type="submit"{{if not .Controls.Next}} disabled{{end}}>Next</button></form>
<form method="post" action="/restart" style="display:inline"><button type="submit"{{if not .Controls.Restart}} disabled{{end}}>Restart</button></form>
</div>
</body>
</html>
`))

func renderPage(w io.Writer, v service.View) error {
	return page.Execute(w, v)
}
