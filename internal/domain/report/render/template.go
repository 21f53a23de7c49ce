package render

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 820px; margin: 0 auto; padding: 24px; background: #fafafa; color: #262626; }
        .container { background: white; border-radius: 12px; padding: 24px; border: 1px solid #dbdbdb; }
        h1 { margin-bottom: 4px; background: linear-gradient(45deg, #f09433, #dc2743, #bc1888); -webkit-background-clip: text; color: transparent; }
        .date { color: #8e8e8e; margin-bottom: 20px; }
        .stats { display: flex; flex-wrap: wrap; gap: 12px; margin-bottom: 20px; }
        .stat { background: #f5f5f5; border-radius: 8px; padding: 10px 14px; }
        .stat .value { font-weight: bold; font-size: 18px; }
        .stat .label { color: #8e8e8e; font-size: 12px; }
        .theme { margin: 6px 0; }
        .theme .name { font-weight: bold; }
        .keyword { background: #fdf0f6; color: #bc1888; padding: 2px 8px; border-radius: 12px; font-size: 12px; margin-right: 4px; }
        .summary { line-height: 1.5; font-style: italic; }
        .item { border-bottom: 1px solid #efefef; padding: 10px 0; }
        .item:last-child { border-bottom: none; }
        .item a { color: #00376b; text-decoration: none; }
        .tone { font-size: 11px; padding: 1px 6px; border-radius: 8px; margin-left: 6px; }
        .tone-positive { background: #e6f7ea; color: #1a7f37; }
        .tone-negative { background: #fdecea; color: #b42318; }
        .tone-neutral { background: #f0f0f0; color: #6b6b6b; }
        .footer { margin-top: 20px; color: #8e8e8e; font-size: 12px; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Title}}</h1>
        <div class="date">Generated on {{.Date}}</div>

        <div class="stats">
            <div class="stat"><div class="value">{{.Result.TotalPosts}}</div><div class="label">Total posts</div></div>
            <div class="stat"><div class="value">{{.Result.PostCount}}</div><div class="label">Posts</div></div>
            <div class="stat"><div class="value">{{.Result.ReelCount}}</div><div class="label">Reels</div></div>
            <div class="stat"><div class="value">{{.Result.Sentiment}}</div><div class="label">Sentiment</div></div>
            <div class="stat"><div class="value">{{.Result.Engagement}}</div><div class="label">Engagement</div></div>
        </div>

        <h2>{{.Result.ContentType}}</h2>
        <p class="summary">{{.Result.Summary}}</p>

        {{if .Result.Themes}}
        <h3>Themes</h3>
        {{range .Result.Themes}}
        <div class="theme">
            <span class="name">{{.Name}}</span> ({{.Strength}})
            {{range .Keywords}}<span class="keyword">{{.}}</span>{{end}}
        </div>
        {{end}}
        {{end}}

        {{if .HasInsights}}
        <h3>Key insights</h3>
        <ul>
            {{range .Result.KeyInsights}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}

        {{if .Items}}
        <h3>Items</h3>
        {{range .Items}}
        <div class="item">
            <div><strong>{{.Label}} #{{.Index}}:</strong> {{.ID}}<span class="tone tone-{{.Tone}}">{{.Tone}}</span></div>
            {{if .Summary}}<div>{{.Summary}}</div>{{end}}
            {{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">View on Instagram</a>{{end}}
        </div>
        {{end}}
        {{end}}

        <div class="footer">{{len .Items}} items analyzed</div>
    </div>
</body>
</html>`
