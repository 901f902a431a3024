package handler

import (
	"html/template"

	"spacex-dashboard/internal/model"
)

type pageData struct {
	Layout  model.Layout
	Initial model.ControlState
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Layout.Title.Text}}</title>
<style>
  body { font-family: sans-serif; margin: 24px; }
  .graph img { max-width: 100%; }
  .slider { display: flex; gap: 12px; align-items: center; }
  .marks { display: flex; justify-content: space-between; width: 480px; color: #777; font-size: 12px; }
</style>
</head>
<body>
<h1 id="title" style="text-align: {{.Layout.Title.TextAlign}}; color: {{.Layout.Title.Color}}; font-size: {{.Layout.Title.FontSize}}px">{{.Layout.Title.Text}}</h1>

{{with .Layout.SiteDropdown}}
<select id="{{.ID}}" title="{{.Placeholder}}">
  {{range .Options}}<option value="{{.Value}}"{{if eq .Value $.Initial.Site}} selected{{end}}>{{.Label}}</option>
  {{end}}
</select>
{{end}}
<br>

<div class="graph"><img id="{{.Layout.PieChart.ID}}" alt="{{.Layout.PieChart.ID}}"></div>
<br>

{{with .Layout.PayloadRange}}
<p>{{.Label}}</p>
<div class="slider" id="{{.ID}}">
  <input type="range" id="payload-low" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{$.Initial.Payload.Low}}">
  <input type="range" id="payload-high" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{$.Initial.Payload.High}}">
  <span id="payload-value">{{$.Initial.Payload.Low}} - {{$.Initial.Payload.High}}</span>
</div>
<div class="marks">{{range .Marks}}<span>{{.Label}}</span>{{end}}</div>
{{end}}

<div class="graph"><img id="{{.Layout.ScatterChart.ID}}" alt="{{.Layout.ScatterChart.ID}}"></div>
<p><a id="download" href="#">Download launches (CSV)</a></p>

<script>
const state = {
  site: {{.Initial.Site}},
  payload: [{{.Initial.Payload.Low}}, {{.Initial.Payload.High}}]
};

function query() {
  const p = new URLSearchParams({site: state.site, low: state.payload[0], high: state.payload[1]});
  return p.toString();
}

function refresh(outputs) {
  const q = query() + "&t=" + Date.now();
  for (const id of Object.keys(outputs)) {
    const img = document.getElementById(id);
    if (img) img.src = "/charts/" + id + ".svg?" + q;
  }
  document.getElementById("download").href = "/api/v1/records?format=csv&" + query();
}

async function update(changed) {
  const resp = await fetch("/api/v1/update", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({changed: changed, state: state})
  });
  if (!resp.ok) return;
  const body = await resp.json();
  refresh(body.outputs);
}

document.getElementById({{.Layout.SiteDropdown.ID}}).addEventListener("change", (e) => {
  state.site = e.target.value;
  update({{.Layout.SiteDropdown.ID}});
});

for (const id of ["payload-low", "payload-high"]) {
  document.getElementById(id).addEventListener("change", () => {
    const low = Number(document.getElementById("payload-low").value);
    const high = Number(document.getElementById("payload-high").value);
    state.payload = [Math.min(low, high), Math.max(low, high)];
    document.getElementById("payload-value").textContent = state.payload[0] + " - " + state.payload[1];
    update({{.Layout.PayloadRange.ID}});
  });
}

update("");
</script>
</body>
</html>
`
