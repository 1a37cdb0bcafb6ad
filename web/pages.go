// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"html/template"
)

// Section holds one page of the site
type Section struct {
	Key   string // used in URL
	Title string // shown in navigation
}

// Sections holds all pages in navigation order
var Sections = []Section{
	{"introduction", "Introduction"},
	{"calculation", "Calculation of Reynolds number and Friction factor"},
	{"plot", "Plot"},
	{"about", "About"},
	{"references", "Books and references"},
}

// findSection returns the section with given key or nil
func findSection(key string) *Section {
	for i := range Sections {
		if Sections[i].Key == key {
			return &Sections[i]
		}
	}
	return nil
}

// References holds the sources listed on the references page
var References = []string{
	"https://en.wikipedia.org/wiki/Moody_chart",
	"https://en.wikipedia.org/wiki/Reynolds_number",
	"https://en.wikipedia.org/wiki/Darcy_friction_factor_formulae",
	"https://theconstructor.org/fluid-mechanics/types-fluid-flow-pipe/38078/",
	"Haaland SE (1983) Simple and explicit formulas for the friction factor in turbulent pipe flow. J. Fluids Eng. 105(1), 89-90",
	"Moody LF (1944) Friction factors for pipe flow. Transactions of the ASME 66(8), 671-684",
}

const layout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Moody's chart - {{.Section.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; }
nav { width: 16em; padding: 1em; background: #f0f2f6; min-height: 100vh; }
main { padding: 1em 2em; flex: 1; }
.success { background: #e6f4ea; padding: 0.6em; border-radius: 4px; margin: 0.5em 0; }
.error { background: #fdecea; padding: 0.6em; border-radius: 4px; margin: 0.5em 0; }
label { display: block; margin-top: 0.6em; }
img { max-width: 100%; }
</style>
</head>
<body>
<nav>
<h2>Contents</h2>
<form method="get" action="/section">
<p>Select one of the following</p>
{{range .Sections}}<label><input type="radio" name="name" value="{{.Key}}"{{if eq .Key $.Section.Key}} checked{{end}} onchange="this.form.submit()"> {{.Title}}</label>
{{end}}<noscript><button type="submit">Go</button></noscript>
</form>
</nav>
<main>
{{template "content" .}}
</main>
</body>
</html>
`

var contents = map[string]string{

	"introduction": `{{define "content"}}
<h1>Introduction</h1>
<p>Fluid flows are classified by how their velocity, density and other properties vary in
space and time: steady or unsteady, uniform or non-uniform, compressible or incompressible,
rotational or irrotational, and laminar or turbulent. This page deals with the last
classification for flows inside pipes.</p>
<p>In a <b>laminar</b> flow the fluid moves in parallel layers that slide smoothly over each
other. A pipe flow is laminar when the Reynolds number is below 2000.</p>
<p>In a <b>turbulent</b> flow the particles move irregularly and form eddies, which dissipate
much more energy. A pipe flow is turbulent when the Reynolds number is above 4000.</p>
<p>Between 2000 and 4000 the flow is in a <b>transition</b> state.</p>
<h1>Reynolds number</h1>
<p>The Reynolds number is the dimensionless ratio of inertial to viscous forces,
Re = &rho;VD/&mu;, where &rho; is the density, V the mean velocity, D the hydraulic diameter
and &mu; the dynamic viscosity.</p>
<h1>Friction factor</h1>
<p>The Darcy friction factor measures the pressure loss caused by friction between the fluid
and the pipe wall. For laminar flows f = 64/Re. For turbulent flows in smooth pipes the
Blasius correlation gives f = 0.316/Re<sup>0.25</sup>.</p>
{{end}}`,

	"calculation": `{{define "content"}}
<h1>Calculation of Reynolds number and Friction factor</h1>
<form method="get" action="/section/calculation">
<label>Viscosity of the fluid (Pa.s) <input type="number" step="any" name="viscosity" value="{{printf "%.5f" .Sample.Viscosity}}"></label>
<label>Density (kg/m^3) <input type="number" step="any" name="density" value="{{printf "%.5f" .Sample.Density}}"></label>
<label>Velocity/flow speed (m/s) <input type="number" step="any" name="velocity" value="{{printf "%.5f" .Sample.Velocity}}"></label>
<label>Pipe Diameter/Length (m) <input type="number" step="any" name="diameter" value="{{printf "%.5f" .Sample.Diameter}}"></label>
<p><button type="submit">Calculate</button></p>
</form>
{{if .Error}}<div class="error">{{.Error}}</div>
{{else}}<div class="success">The Reynold's number is {{.Reynolds}}</div>
<p>{{.Regime}}</p>
<div class="success">The Friction factor of the flow is {{.Friction}}</div>
{{if .Determined}}<p><a href="/section/plot?re={{.Reynolds}}&amp;f={{.Friction}}">Show on the chart</a></p>{{end}}
{{end}}{{end}}`,

	"plot": `{{define "content"}}
<h1>Moody chart</h1>
{{if .Error}}<div class="error">The point cannot be shown: {{.Error}}</div>{{end}}
<img src="/chart.svg{{if .Point}}?re={{.Point.Re}}&amp;f={{.Point.F}}{{end}}" alt="Moody chart">
{{end}}`,

	"about": `{{define "content"}}
<h1>About</h1>
<p>This is an educational tool that plots the friction factor against the Reynolds number
for pipe flows. The chart reproduces the classical Moody diagram: the laminar line, the
critical zone, the Haaland curves for several relative roughness values and the line where
each curve reaches the fully rough regime.</p>
{{end}}`,

	"references": `{{define "content"}}
<h1>References</h1>
<ol>
{{range .References}}<li>{{.}}</li>
{{end}}</ol>
{{end}}`,
}

// templates holds one parsed template per section
var templates = func() map[string]*template.Template {
	res := make(map[string]*template.Template)
	for key, content := range contents {
		res[key] = template.Must(template.Must(template.New(key).Parse(layout)).Parse(content))
	}
	return res
}()
