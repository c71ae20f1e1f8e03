package notify

const digestHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Daily Defense Tech Brief</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: linear-gradient(135deg, #1f2a3a 0%, #37393b 100%);
      color: #ffffff;
    }

    .brief-title {
      font-size: 24px;
      font-weight: 700;
      letter-spacing: 0.05em;
      margin-bottom: 4px;
    }

    .brief-date {
      font-size: 15px;
      opacity: 0.9;
    }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .item {
      padding: 12px 0;
      border-bottom: 1px solid #f3f4f6;
    }

    .item:last-child {
      border-bottom: none;
    }

    .item-title {
      font-size: 15px;
      font-weight: 600;
      margin-bottom: 4px;
    }

    .score-badge {
      display: inline-block;
      padding: 3px 8px;
      font-size: 12px;
      font-weight: 700;
      border-radius: 4px;
      background: #1f2a3a;
      color: #ffffff;
      margin-right: 6px;
    }

    .item-meta {
      font-size: 12px;
      color: #6b7280;
      margin-bottom: 6px;
    }

    .category-tag {
      display: inline-block;
      padding: 3px 8px;
      font-size: 11px;
      font-weight: 600;
      background: #e0f2fe;
      color: #0369a1;
      border-radius: 4px;
      margin-right: 6px;
    }

    .item-summary {
      font-size: 14px;
      color: #374151;
      margin-bottom: 6px;
    }

    .keywords-list {
      display: flex;
      flex-wrap: wrap;
      gap: 6px;
      margin: 6px 0 0 0;
      padding: 0;
      list-style: none;
    }

    .keyword-tag {
      display: inline-block;
      padding: 2px 8px;
      font-size: 11px;
      font-weight: 500;
      background: #fef3c7;
      color: #92400e;
      border-radius: 4px;
    }

    .footer {
      padding: 16px 24px;
      font-size: 12px;
      color: #9ca3af;
      text-align: center;
      background: #f9fafb;
      border-top: 1px solid #f3f4f6;
    }

    a {
      color: #0b3d91;
      text-decoration: none;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="brief-title">Daily Defense Tech Brief</div>
      <div class="brief-date">{{.GeneratedAt.Format "Monday, 02 Jan 2006"}}</div>
    </div>

    {{if .Articles}}
    <div class="section">
      <div class="section-title">News Articles</div>
      {{range .Articles}}
      <div class="item">
        <div class="item-title">
          <span class="score-badge">{{.CompositeScore}}/10</span>
          <a href="{{.Link}}" target="_blank" rel="noopener">{{.Title}}</a>
        </div>
        <div class="item-meta">
          <span class="category-tag">{{.Category}}</span>
          {{.Source}}
        </div>
        <div class="item-summary">{{.Summary}}</div>
        {{if .Matches}}
        <div class="keywords-list">
          {{range .Matches}}
          <span class="keyword-tag">{{.Keyword}}</span>
          {{end}}
        </div>
        {{end}}
      </div>
      {{end}}
    </div>
    {{end}}

    {{if .Opportunities}}
    <div class="section">
      <div class="section-title">Contract Opportunities (SAM.gov)</div>
      {{range .Opportunities}}
      <div class="item">
        <div class="item-title">
          <span class="score-badge">{{.CompositeScore}}/10</span>
          <a href="{{.Link}}" target="_blank" rel="noopener">{{.Title}}</a>
        </div>
        <div class="item-meta">
          Solicitation {{.SolicitationNumber}} · NAICS {{.NAICSCode}} · {{.Type}} ·
          Respond by {{.ResponseDeadline}}
        </div>
        <div class="item-summary">{{.Summary}}</div>
        {{if .Matches}}
        <div class="keywords-list">
          {{range .Matches}}
          <span class="keyword-tag">{{.Keyword}}</span>
          {{end}}
        </div>
        {{end}}
      </div>
      {{end}}
    </div>
    {{end}}

    <div class="footer">
      Generated by <a href="https://github.com/shanehull/defbrief" target="_blank" rel="noopener">defbrief</a>
    </div>
  </div>
</body>
</html>`
