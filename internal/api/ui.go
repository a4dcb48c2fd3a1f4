package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Dashboard serves the embedded single-page UI. Everything it shows comes
// from the JSON API; the page itself carries no analytics logic.
func (h *Handler) Dashboard(c echo.Context) error {
	return c.HTML(http.StatusOK, dashboardHTML)
}

const dashboardHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Aircrash Analysis Dashboard</title>
  <style>
    :root {
      --brand: #0e5d8f;
      --brand-2: #0971b2;
      --bg: #f7f7f7;
      --paper: #fff;
      --text: #333;
      --muted: #777;
      --line: #ddd;
      --bad-bg: #f2dede;
      --bad-text: #a94442;
    }

    * { box-sizing: border-box; }

    body {
      margin: 0;
      background: var(--bg);
      color: var(--text);
      font-family: "Helvetica Neue", Helvetica, Arial, sans-serif;
      font-size: 14px;
      line-height: 1.43;
    }

    header {
      background: linear-gradient(to right, var(--brand) 0, var(--brand-2) 100%);
      color: #fff;
      padding: 16px 24px;
    }

    header h1 { margin: 0; font-size: 22px; font-weight: 300; }
    header h1 strong { font-weight: 600; }

    .layout { display: flex; gap: 16px; padding: 16px 24px; align-items: flex-start; }

    aside {
      background: var(--paper);
      border: 1px solid var(--line);
      border-radius: 4px;
      padding: 12px;
      width: 240px;
      flex-shrink: 0;
      position: sticky;
      top: 16px;
    }

    aside label { display: block; font-weight: 600; margin: 10px 0 4px; }
    aside select { width: 100%; min-height: 96px; border: 1px solid var(--line); }
    aside .hint { color: var(--muted); font-size: 12px; margin-top: 8px; }
    aside button, aside a.export {
      display: block; width: 100%; margin-top: 10px; padding: 6px 0;
      text-align: center; border: 1px solid var(--line); border-radius: 3px;
      background: var(--paper); color: var(--brand); cursor: pointer;
      text-decoration: none; font-size: 13px;
    }

    main { flex: 1; min-width: 0; }

    .kpis { display: grid; grid-template-columns: repeat(auto-fit, minmax(170px, 1fr)); gap: 12px; }
    .kpi { background: var(--paper); border: 1px solid var(--line); border-radius: 4px; padding: 12px; }
    .kpi .label { color: var(--muted); font-size: 12px; }
    .kpi .value { font-size: 24px; font-weight: 600; margin-top: 4px; }

    section.q {
      background: var(--paper); border: 1px solid var(--line); border-radius: 4px;
      padding: 12px; margin-top: 16px;
    }
    section.q h2 { margin: 0 0 8px; font-size: 16px; color: var(--brand); }

    table { border-collapse: collapse; width: 100%; margin-bottom: 8px; }
    th, td { border: 1px solid var(--line); padding: 4px 8px; text-align: left; }
    th { background: #f0f0f0; }
    td.num { text-align: right; }

    canvas { width: 100%; height: 220px; }

    .banner {
      display: none; background: var(--bad-bg); color: var(--bad-text);
      border: 1px solid var(--bad-text); border-radius: 4px;
      padding: 10px 12px; margin-bottom: 12px;
    }
    .banner details { margin-top: 6px; }
    .banner code { display: block; white-space: pre-wrap; font-size: 12px; }
  </style>
</head>
<body>
  <header><h1><strong>Aircrash</strong> Analysis Dashboard</h1></header>

  <div class="layout">
    <aside>
      <label for="f-country">Country/Region</label>
      <select id="f-country" multiple></select>
      <label for="f-aircraft">Aircraft</label>
      <select id="f-aircraft" multiple></select>
      <label for="f-operator">Operator</label>
      <select id="f-operator" multiple></select>
      <label for="f-year">Year</label>
      <select id="f-year" multiple></select>
      <button id="clear">Clear filters</button>
      <a class="export" id="export" href="/api/export.xlsx">Download .xlsx</a>
      <div class="hint">Ctrl/Cmd-click for multiple values. Empty selection means no restriction.</div>
    </aside>

    <main>
      <div class="banner" id="banner">
        <span id="banner-msg">Error: check error details</span>
        <details><summary>Error details</summary><code id="banner-detail"></code></details>
      </div>

      <div class="kpis">
        <div class="kpi"><div class="label">Total Crashes</div><div class="value" id="k-crashes">–</div></div>
        <div class="kpi"><div class="label">Total Fatalities</div><div class="value" id="k-fatalities">–</div></div>
        <div class="kpi"><div class="label">Total Aboard</div><div class="value" id="k-aboard">–</div></div>
        <div class="kpi"><div class="label">Avg Fatalities</div><div class="value" id="k-avg">–</div></div>
        <div class="kpi"><div class="label">Fatalities Contribution</div><div class="value" id="k-pct">–</div></div>
      </div>

      <div id="questions"></div>
    </main>
  </div>

  <script>
    const DIMS = [
      { id: "f-country", param: "country", key: "country_region" },
      { id: "f-aircraft", param: "aircraft", key: "aircraft" },
      { id: "f-operator", param: "operator", key: "operator" },
      { id: "f-year", param: "year", key: "years" },
    ];

    const QUESTIONS = [
      { key: "country_aircraft", chart: "q1", title: "Q1: Highest Number of Crashes by Country & Aircraft",
        cols: [["country_region", "Country/Region"], ["aircraft", "Aircraft"], ["crashes", "Crashes"]] },
      { key: "top_aircraft", chart: "q2", title: "Q2: Top 6 Aircraft by Crashes",
        cols: [["name", "Aircraft"], ["crashes", "Crashes"]] },
      { key: "top_operators", chart: "q3", title: "Q3: Top 5 Operators by Crashes",
        cols: [["name", "Operator"], ["crashes", "Crashes"]] },
      { key: "crashes_by_year", chart: "q4", title: "Q4: Top 10 Years by Number of Crashes",
        cols: [["year", "Year"], ["crashes", "Crashes"]] },
      { key: "top_locations", chart: "q5", title: "Q5: Top 5 Locations by Fatalities",
        cols: [["name", "Location"], ["fatalities", "Fatalities"]] },
      { key: "country_traffic", chart: "q6", title: "Q6: Top 5 Countries by Passengers Aboard & Fatalities",
        cols: [["country_region", "Country/Region"], ["aboard", "Aboard"], ["fatalities", "Fatalities"]] },
      { key: null, kpi: "avg_fatalities", title: "Q7: Average Number of Fatalities" },
      { key: null, kpi: "total_fatalities", title: "Q8: Total Fatalities" },
      { key: null, kpi: "total_aboard", title: "Q9: Total Passengers Aboard" },
      { key: "fatalities_by_month", chart: "q10", title: "Q10: Fatalities by Month",
        cols: [["month", "Month"], ["fatalities", "Fatalities"]] },
    ];

    function query() {
      const qs = new URLSearchParams();
      for (const d of DIMS) {
        for (const o of document.getElementById(d.id).selectedOptions) qs.append(d.param, o.value);
      }
      return qs.toString();
    }

    function showError(msg, detail) {
      document.getElementById("banner").style.display = "block";
      document.getElementById("banner-msg").textContent = msg;
      document.getElementById("banner-detail").textContent = detail || "";
    }

    function hideError() {
      document.getElementById("banner").style.display = "none";
    }

    async function getJSON(url) {
      const res = await fetch(url);
      const body = await res.json();
      if (!res.ok) {
        const err = new Error(body.error || ("HTTP " + res.status));
        err.detail = body.detail;
        throw err;
      }
      return body;
    }

    async function loadOptions() {
      const opts = await getJSON("/api/options");
      for (const d of DIMS) {
        const sel = document.getElementById(d.id);
        sel.innerHTML = "";
        for (const v of opts[d.key] || []) {
          const o = document.createElement("option");
          o.value = v; o.textContent = v;
          sel.appendChild(o);
        }
      }
    }

    function fmt(v) {
      return typeof v === "number" ? v.toLocaleString(undefined, { maximumFractionDigits: 2 }) : v;
    }

    function renderTable(q, rows) {
      let html = "<table><tr>";
      for (const [, label] of q.cols) html += "<th>" + label + "</th>";
      html += "</tr>";
      for (const row of rows || []) {
        html += "<tr>";
        for (const [key] of q.cols) {
          const v = row[key];
          html += typeof v === "number" ? '<td class="num">' + fmt(v) + "</td>" : "<td>" + v + "</td>";
        }
        html += "</tr>";
      }
      return html + "</table>";
    }

    function drawChart(canvas, cfg) {
      const ctx = canvas.getContext("2d");
      const W = canvas.width = canvas.clientWidth * 2, H = canvas.height = 440;
      ctx.clearRect(0, 0, W, H);
      const series = cfg.series || [];
      if (!series.length || !series[0].data.length) return;

      const labels = series[0].data.map(p => p.label);
      let max = 0;
      for (const s of series) for (const p of s.data) max = Math.max(max, p.value);
      if (max === 0) max = 1;

      const padL = 60, padB = 70, padT = 20;
      const plotW = W - padL - 20, plotH = H - padT - padB;

      ctx.strokeStyle = "#ddd";
      ctx.font = "20px sans-serif";
      ctx.fillStyle = "#777";
      for (let i = 0; i <= 4; i++) {
        const y = padT + plotH - (plotH * i / 4);
        ctx.beginPath(); ctx.moveTo(padL, y); ctx.lineTo(W - 20, y); ctx.stroke();
        ctx.fillText(fmt(max * i / 4), 4, y + 6);
      }

      const slot = plotW / labels.length;
      if (cfg.chart_type === "line") {
        ctx.strokeStyle = cfg.colors[0] || "#4F46E5";
        ctx.lineWidth = 3;
        ctx.beginPath();
        series[0].data.forEach((p, i) => {
          const x = padL + slot * i + slot / 2;
          const y = padT + plotH - (p.value / max) * plotH;
          i === 0 ? ctx.moveTo(x, y) : ctx.lineTo(x, y);
        });
        ctx.stroke();
      } else {
        const barW = slot / (series.length + 1);
        series.forEach((s, si) => {
          s.data.forEach((p, i) => {
            ctx.fillStyle = series.length > 1 ? cfg.colors[si] : (cfg.colors[i] || "#4F46E5");
            const h = (p.value / max) * plotH;
            ctx.fillRect(padL + slot * i + barW * (si + 0.5), padT + plotH - h, barW, h);
          });
        });
      }

      ctx.fillStyle = "#777";
      labels.forEach((label, i) => {
        ctx.save();
        ctx.translate(padL + slot * i + slot / 2, H - padB + 16);
        ctx.rotate(-Math.PI / 5);
        ctx.fillText(label.length > 18 ? label.slice(0, 17) + "…" : label, -40, 0);
        ctx.restore();
      });
    }

    function renderQuestions(payload) {
      const root = document.getElementById("questions");
      root.innerHTML = "";
      for (const q of QUESTIONS) {
        const sec = document.createElement("section");
        sec.className = "q";
        let inner = "<h2>" + q.title + "</h2>";
        if (q.kpi) {
          inner += '<div class="kpi"><div class="value">' + fmt(payload.data.kpis[q.kpi]) + "</div></div>";
          sec.innerHTML = inner;
        } else {
          inner += renderTable(q, payload.data[q.key]);
          sec.innerHTML = inner;
          const canvas = document.createElement("canvas");
          sec.appendChild(canvas);
          const cfg = payload.charts[q.chart];
          if (cfg) requestAnimationFrame(() => drawChart(canvas, cfg));
        }
        root.appendChild(sec);
      }
    }

    async function refresh() {
      try {
        const qs = query();
        document.getElementById("export").href = "/api/export.xlsx" + (qs ? "?" + qs : "");
        const payload = await getJSON("/api/dashboard" + (qs ? "?" + qs : ""));
        hideError();
        const k = payload.data.kpis;
        document.getElementById("k-crashes").textContent = fmt(k.total_crashes);
        document.getElementById("k-fatalities").textContent = fmt(k.total_fatalities);
        document.getElementById("k-aboard").textContent = fmt(k.total_aboard);
        document.getElementById("k-avg").textContent = fmt(k.avg_fatalities);
        document.getElementById("k-pct").textContent = fmt(k.fatalities_contribution_pct) + "%";
        renderQuestions(payload);
      } catch (err) {
        showError("Error: " + err.message, err.detail);
      }
    }

    for (const d of DIMS) document.getElementById(d.id).addEventListener("change", refresh);
    document.getElementById("clear").addEventListener("click", () => {
      for (const d of DIMS) document.getElementById(d.id).selectedIndex = -1;
      refresh();
    });

    (async function init() {
      try {
        await loadOptions();
        await refresh();
      } catch (err) {
        showError("Error: " + err.message, err.detail);
        // Initial load may still be running; retry shortly.
        setTimeout(init, 2000);
      }
    })();
  </script>
</body>
</html>
`
