// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package viewer

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

// ScriptURL is the 3Dmol.js build the page loads.
const ScriptURL = "https://3dmol.org/build/3Dmol-min.js"

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageData fills the viewer page.
type PageData struct {
	// Accession prefills the search box and is loaded on page open.
	Accession string
	// Color is the initial color scheme.
	Color string
	// APIBase is the path prefix of the protein JSON API.
	APIBase string
}

type pageView struct {
	PageData
	ScriptURL string
	Schemes   []string
	StyleJSON template.JS
}

// RenderPage writes the viewer page for data to w.
func RenderPage(w io.Writer, data PageData) error {
	style, err := Style(data.Color)
	if err != nil {
		return err
	}
	if data.Color == "" {
		data.Color = SchemeLDDT
	}
	if data.APIBase == "" {
		data.APIBase = "/api/protein/"
	}

	raw, err := json.Marshal(style)
	if err != nil {
		return fmt.Errorf("encoding style: %w", err)
	}
	view := pageView{
		PageData:  data,
		ScriptURL: ScriptURL,
		Schemes:   Schemes(),
		StyleJSON: template.JS(raw),
	}
	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
