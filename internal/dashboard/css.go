package dashboard

// baseCSS is the theme-independent portion of the page stylesheet. The
// :root variable block for the active theme is prepended at render time.
const baseCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, monospace;
    background: var(--bg);
    color: var(--text);
    line-height: 1.6;
    padding: 2rem;
    max-width: 960px;
    margin: 0 auto;
}

h1 { font-size: 1.5rem; margin-bottom: 0.25rem; color: var(--accent); }
h2 { font-size: 1.15rem; margin: 1.5rem 0 0.75rem; color: var(--text); border-bottom: 1px solid var(--border); padding-bottom: 0.3rem; }
h3 { font-size: 0.95rem; margin: 1rem 0 0.5rem; color: var(--text-muted); }

.subtitle { color: var(--text-muted); font-size: 0.85rem; margin-bottom: 1.5rem; }

/* Summary cards */
.cards {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(130px, 1fr));
    gap: 0.75rem;
    margin-bottom: 1rem;
}
.card {
    background: var(--card);
    border-radius: 6px;
    padding: 0.75rem;
    text-align: center;
}
.card-value { font-size: 1.4rem; font-weight: bold; color: var(--accent); }
.card-label { font-size: 0.75rem; color: var(--text-muted); margin-top: 0.15rem; }
.card-sub { font-size: 0.65rem; color: var(--text-muted); }

/* Bar chart */
.bar-chart { margin: 0.5rem 0; }
.bar-row {
    display: flex;
    align-items: center;
    margin-bottom: 0.35rem;
}
.bar-label {
    width: 100px;
    font-size: 0.8rem;
    color: var(--text-muted);
    text-align: right;
    padding-right: 0.75rem;
    flex-shrink: 0;
}
.bar-track {
    flex: 1;
    background: var(--surface);
    border-radius: 3px;
    height: 20px;
    overflow: hidden;
}
.bar-fill {
    height: 100%;
    border-radius: 3px;
    background: var(--bar-1);
    transition: width 0.3s;
}
.bar-fill.c2 { background: var(--bar-2); }
.bar-fill.c3 { background: var(--bar-3); }
.bar-fill.c4 { background: var(--bar-4); }
.bar-fill.c5 { background: var(--bar-5); }
.bar-value {
    width: 50px;
    font-size: 0.8rem;
    padding-left: 0.5rem;
    color: var(--text-muted);
    flex-shrink: 0;
}
.bar-chart .no-data { color: var(--text-muted); font-size: 0.8rem; font-style: italic; }

/* Progress bar */
.progress-row {
    display: flex;
    align-items: center;
    margin-bottom: 0.4rem;
}
.progress-label {
    width: 120px;
    font-size: 0.8rem;
    color: var(--text-muted);
    text-align: right;
    padding-right: 0.75rem;
    flex-shrink: 0;
}
.progress-track {
    flex: 1;
    background: var(--surface);
    border-radius: 3px;
    height: 16px;
    overflow: hidden;
}
.progress-fill {
    height: 100%;
    border-radius: 3px;
    background: var(--accent);
}
.progress-value {
    width: 50px;
    font-size: 0.8rem;
    padding-left: 0.5rem;
    color: var(--text-muted);
    flex-shrink: 0;
}

/* Tables */
table {
    width: 100%;
    border-collapse: collapse;
    margin: 0.5rem 0;
    font-size: 0.85rem;
}
th {
    text-align: left;
    padding: 0.4rem 0.6rem;
    border-bottom: 2px solid var(--border);
    color: var(--text-muted);
    font-weight: 600;
}
td {
    padding: 0.35rem 0.6rem;
    border-bottom: 1px solid var(--border);
}
tr.best td { color: var(--success); }

/* Two-column layout for n-grams */
.two-col {
    display: grid;
    grid-template-columns: 1fr 1fr;
    gap: 1rem;
}

/* Index table */
.status-yes { color: var(--success); }
.status-no { color: var(--text-muted); }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

/* Indicator */
.indicator { font-size: 0.8rem; padding: 0.15rem 0.5rem; border-radius: 3px; }
.indicator.positive { background: rgba(46, 204, 113, 0.15); color: var(--success); }
.indicator.neutral { background: rgba(139, 139, 139, 0.15); color: var(--text-muted); }

/* Reflection text */
.reflection-text {
    background: var(--surface);
    border-radius: 6px;
    padding: 1.25rem;
    font-size: 0.85rem;
    line-height: 1.7;
}
.reflection-text h1 { font-size: 1.2rem; margin: 1.25rem 0 0.5rem; border-bottom: none; }
.reflection-text h2 { font-size: 1.05rem; margin: 1.25rem 0 0.5rem; border-bottom: none; }
.reflection-text h3 { font-size: 0.9rem; margin: 1rem 0 0.4rem; color: var(--text); }
.reflection-text p { margin: 0.5rem 0; }
.reflection-text ul, .reflection-text ol { margin: 0.4rem 0 0.4rem 1.5rem; }
.reflection-text li { margin-bottom: 0.25rem; }
.reflection-text strong { color: var(--accent); }
.reflection-text code { background: var(--card); padding: 0.1rem 0.3rem; border-radius: 3px; font-size: 0.8rem; }

/* Page header with theme selector */
.page-header {
    display: flex;
    align-items: center;
    justify-content: space-between;
    gap: 1rem;
    margin-bottom: 0.25rem;
}
.page-header h1 { margin-bottom: 0; }
.theme-selector {
    display: flex;
    align-items: center;
    gap: 0.4rem;
    flex-shrink: 0;
}
.theme-selector label {
    font-size: 0.75rem;
    color: var(--text-muted);
    white-space: nowrap;
}
.theme-selector select {
    background: var(--card);
    color: var(--text);
    border: 1px solid var(--border);
    border-radius: 4px;
    padding: 0.3rem 0.5rem;
    font-size: 0.75rem;
    font-family: inherit;
    cursor: pointer;
    appearance: auto;
}
.theme-selector select:hover {
    border-color: var(--accent);
}
`

// pageCSS assembles the full stylesheet for a theme.
func pageCSS(theme string) string {
	return themeCSSVars(theme) + "\n" + baseCSS
}
