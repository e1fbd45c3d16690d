package server

import (
	"html/template"
)

// message is an inline banner rendered at the top of the page.
type message struct {
	Type string // "success" or "error"
	Text string
}

// page is the data the configuration page is rendered from.
type page struct {
	Messages        []message
	CurrentHostname string
	SuggestedDomain string
	RootPassword    bool
}

func successMessage(text string) message {
	return message{Type: "success", Text: text}
}

func errorMessage(text string) message {
	return message{Type: "error", Text: text}
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Jumpstarter Configuration</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            display: flex;
            justify-content: center;
            align-items: center;
            padding: 20px;
        }
        .container {
            background: white;
            border-radius: 12px;
            box-shadow: 0 10px 40px rgba(0,0,0,0.2);
            max-width: 600px;
            width: 100%;
            padding: 40px;
        }
        h1 {
            color: #333;
            margin-bottom: 10px;
            font-size: 28px;
        }
        .subtitle {
            color: #666;
            margin-bottom: 30px;
            font-size: 14px;
        }
        .section {
            margin-bottom: 30px;
            padding-bottom: 30px;
            border-bottom: 1px solid #eee;
        }
        .section:last-child {
            border-bottom: none;
            margin-bottom: 0;
            padding-bottom: 0;
        }
        h2 {
            color: #444;
            font-size: 20px;
            margin-bottom: 15px;
        }
        .info {
            background: #f8f9fa;
            padding: 12px 16px;
            border-radius: 6px;
            margin-bottom: 15px;
            font-size: 14px;
            color: #555;
        }
        .info strong {
            color: #333;
        }
        .form-group {
            margin-bottom: 15px;
        }
        label {
            display: block;
            margin-bottom: 6px;
            color: #555;
            font-size: 14px;
            font-weight: 500;
        }
        input[type="text"], input[type="password"] {
            width: 100%;
            padding: 10px 12px;
            border: 1px solid #ddd;
            border-radius: 6px;
            font-size: 14px;
            transition: border-color 0.3s;
        }
        input[type="text"]:focus, input[type="password"]:focus {
            outline: none;
            border-color: #667eea;
        }
        .hint {
            font-size: 12px;
            color: #888;
            margin-top: 4px;
        }
        button {
            background: #667eea;
            color: white;
            border: none;
            padding: 12px 24px;
            border-radius: 6px;
            font-size: 14px;
            font-weight: 500;
            cursor: pointer;
            transition: background 0.3s;
        }
        button:hover {
            background: #5568d3;
        }
        .download-btn {
            background: #28a745;
            display: inline-block;
            text-decoration: none;
            color: white;
            padding: 12px 24px;
            border-radius: 6px;
            font-size: 14px;
            font-weight: 500;
            transition: background 0.3s;
        }
        .download-btn:hover {
            background: #218838;
        }
        .message {
            padding: 12px 16px;
            border-radius: 6px;
            margin-bottom: 20px;
            font-size: 14px;
        }
        .message.success {
            background: #d4edda;
            color: #155724;
            border: 1px solid #c3e6cb;
        }
        .message.error {
            background: #f8d7da;
            color: #721c24;
            border: 1px solid #f5c6cb;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Jumpstarter Configuration</h1>
        <p class="subtitle">Configure your Jumpstarter deployment settings</p>

        {{range .Messages}}<div class="message {{.Type}}">{{.Text}}</div>
        {{end}}
        <div class="section">
            <h2>Hostname Configuration</h2>
            <div class="info">
                <strong>Current Hostname:</strong> {{.CurrentHostname}}
            </div>
            <form method="POST" action="/configure-hostname">
                <div class="form-group">
                    <label for="hostname">New Hostname</label>
                    <input type="text" id="hostname" name="hostname" value="{{.SuggestedDomain}}" required>
                    <div class="hint">Default: {{.SuggestedDomain}}</div>
                </div>
                <button type="submit">Update Hostname</button>
            </form>
        </div>

        <div class="section">
            <h2>Jumpstarter Configuration</h2>
            <form method="POST" action="/configure-jumpstarter">
                <div class="form-group">
                    <label for="baseDomain">Base Domain *</label>
                    <input type="text" id="baseDomain" name="baseDomain" placeholder="example.com" required>
                    <div class="hint">Required: The base domain for your Jumpstarter deployment</div>
                </div>
                <div class="form-group">
                    <label for="imageVersion">Image Version</label>
                    <input type="text" id="imageVersion" name="imageVersion" placeholder="latest">
                    <div class="hint">Optional: Specific image version to use</div>
                </div>
{{- if .RootPassword}}
                <div class="form-group">
                    <label for="rootPassword">Root Password *</label>
                    <input type="password" id="rootPassword" name="rootPassword" required>
                    <div class="hint">Required: New root password, at least 8 characters</div>
                </div>
{{- end}}
                <button type="submit">Apply Configuration</button>
            </form>
        </div>

        <div class="section">
            <h2>Download Kubeconfig</h2>
            <p style="color: #666; font-size: 14px; margin-bottom: 15px;">
                Download the MicroShift kubeconfig file to access the Kubernetes cluster.
            </p>
            <a href="/kubeconfig" class="download-btn">Download kubeconfig</a>
        </div>
    </div>
</body>
</html>`
