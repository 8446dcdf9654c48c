package server

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

const formTemplate = "form"

// templateRenderer adapts html/template to echo.Renderer.
type templateRenderer struct {
	templates *template.Template
}

func newRenderer() *templateRenderer {
	return &templateRenderer{
		templates: template.Must(template.New(formTemplate).Parse(formHTML)),
	}
}

// Render implements echo.Renderer.
func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

const formHTML = `<!DOCTYPE html>
<html><body style="font-family: monospace; padding: 20px;">
<h1>Project to Single File Converter</h1>
{{if .Submitted}}
<div style="background-color: #f0f0f0; padding: 10px; border-radius: 5px;">
<p>Converting project to single file...</p>
{{if .Success}}
<p style="color: green;">{{.Message}}</p>
<p>Output file: {{.Result.Output}}</p>
<p>Total files processed: {{.Result.FileCount}}</p>
{{if .Result.Unreadable}}<p style="color: #b58900;">Unreadable files replaced by a placeholder: {{.Result.Unreadable}}</p>{{end}}
{{else}}
<p style="color: red;">Conversion failed.</p>
<p style="color: red;">{{.Message}}</p>
{{end}}
</div>
{{end}}
<form method="post" style="margin-top: 20px;">
<div style="margin-bottom: 10px;">
<label for="projectDir">Project Directory:</label><br>
<input type="text" id="projectDir" name="projectDir" value="{{.ProjectDir}}" style="width: 100%; padding: 5px;" required>
</div>
<div style="margin-bottom: 10px;">
<label for="outputFile">Output File (default: {{.DefaultOutput}}):</label><br>
<input type="text" id="outputFile" name="outputFile" value="{{.OutputFile}}" style="width: 100%; padding: 5px;">
</div>
<button type="submit" style="padding: 8px 15px; background-color: #4CAF50; color: white; border: none; border-radius: 4px; cursor: pointer;">Convert Project</button>
</form>
<div style="margin-top: 20px; font-size: 0.9em;">
<p><strong>Note:</strong> The following directories will be excluded:</p>
<ul>{{range .ExcludedDirs}}<li>{{.}}</li>{{end}}</ul>
<p><strong>Note:</strong> The following extensions will be excluded:</p>
<ul>{{range .ExcludedExtensions}}<li>{{.}}</li>{{end}}</ul>
<p><strong>Note:</strong> The following files will be excluded:</p>
<ul>{{range .ExcludedFiles}}<li>{{.}}</li>{{end}}</ul>
</div>
</body></html>
`
