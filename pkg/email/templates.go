package email

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

// NextSteps are the fixed "what happens next" items of the acknowledgement.
var NextSteps = []string{
	"Our team reviews your requirements within 24 hours",
	"We prepare a tailored proposal and timeline",
	"We schedule a consultation call to discuss your vision",
	"We begin crafting your digital solution",
}

type adminEmailData struct {
	Brand       Brand
	Name        string
	Email       string
	Project     string
	SubmittedAt string
}

type ackEmailData struct {
	Brand   Brand
	Name    string
	Project string
	Steps   []string
}

// adminEmailTemplate is the HTML body sent to every admin recipient
const adminEmailTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>New Contact Form Submission</title>
</head>
<body style="margin:0;padding:0;">
<div style="font-family:'Segoe UI',Arial,sans-serif;max-width:600px;margin:0 auto;padding:24px;background:#0f0f1e;">
  <div style="background:#141423;padding:32px;border-radius:16px;border:1px solid #5a3a1a;">
    <div style="text-align:center;margin-bottom:28px;padding-bottom:20px;border-bottom:2px solid #6b4415;">
      <h1 style="color:#ff7f00;font-size:28px;margin:0 0 8px 0;letter-spacing:3px;">{{.Brand.Name}}</h1>
      <p style="color:#9a9aa6;margin:0;font-size:12px;letter-spacing:1px;">NEW CONTACT SUBMISSION</p>
    </div>
    <div style="background:#231a14;padding:24px;border-radius:12px;margin:20px 0;border-left:4px solid #ff7f00;">
      <h3 style="color:#ff9500;margin:0 0 16px 0;font-size:16px;">Contact Details</h3>
      <p style="margin:10px 0;color:#e6e6e6;"><strong style="color:#ff7f00;">Name:</strong> {{.Name}}</p>
      <p style="margin:10px 0;color:#e6e6e6;"><strong style="color:#ff7f00;">Email:</strong> <a href="mailto:{{.Email}}" style="color:#ff9500;text-decoration:none;">{{.Email}}</a></p>
      <p style="margin:10px 0;color:#e6e6e6;"><strong style="color:#ff7f00;">Submitted:</strong> {{.SubmittedAt}}</p>
    </div>
    <div style="background:#1c1426;padding:24px;border-radius:12px;margin:20px 0;border-left:4px solid #8a2be2;">
      <h3 style="color:#a855f7;margin:0 0 16px 0;font-size:16px;">Project Description</h3>
      <p style="color:#dcdcdc;line-height:1.7;white-space:pre-wrap;margin:0;">{{.Project}}</p>
    </div>
    <div style="background:#2a1b10;padding:24px;border-radius:12px;margin:20px 0;border:1px solid #5a3a1a;">
      <h3 style="color:#ff7f00;margin:0 0 12px 0;font-size:16px;">Action Required</h3>
      <p style="color:#e6e6e6;margin:0 0 8px 0;"><strong>Please respond within 24 hours.</strong></p>
      <p style="color:#b3b3b3;margin:0;font-size:14px;">Click reply to respond directly to the customer.</p>
    </div>
    <div style="text-align:center;margin-top:32px;padding-top:24px;border-top:1px solid #2a2a3a;">
      <p style="color:#80808c;margin:0;font-size:13px;">
        <strong style="color:#ff7f00;">{{.Brand.Name}} Contact System</strong><br>
        <span style="font-size:12px;">Automated from {{.Brand.Site}}</span>
      </p>
    </div>
  </div>
</div>
</body>
</html>`

const adminTextTemplate = `{{.Brand.Name}} - new contact submission

Name:      {{.Name}}
Email:     {{.Email}}
Submitted: {{.SubmittedAt}}

Project description:
{{.Project}}

Please respond within 24 hours. Reply to this email to answer the customer directly.
`

// ackEmailTemplate is the HTML body of the acknowledgement sent to the submitter
const ackEmailTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Thank you for contacting {{.Brand.Name}}</title>
</head>
<body style="margin:0;padding:0;">
<div style="font-family:'Segoe UI',Arial,sans-serif;max-width:600px;margin:0 auto;padding:24px;background:#0f0f1e;">
  <div style="background:#141423;padding:40px;border-radius:20px;border:1px solid #4a3018;">
    <div style="text-align:center;margin-bottom:32px;">
      <h1 style="color:#ff7f00;font-size:32px;margin:0 0 8px 0;letter-spacing:4px;">{{.Brand.Name}}</h1>
      <p style="color:#9a9aa6;margin:0;font-size:13px;letter-spacing:1px;">{{.Brand.Tagline}}</p>
    </div>
    <h2 style="color:#ffffff;margin:0 0 20px 0;font-size:24px;">Hi {{.Name}}!</h2>
    <p style="color:#dcdcdc;line-height:1.7;font-size:16px;margin:0 0 28px 0;">
      Thank you for reaching out to <strong style="color:#ff7f00;">{{.Brand.Name}}</strong>! We've received your project inquiry and are excited to discuss your vision.
    </p>
    <div style="background:#2a1b10;padding:24px;border-radius:14px;margin:0 0 28px 0;border:1px solid #5a3a1a;">
      <h3 style="margin:0 0 16px 0;color:#ff9500;font-size:16px;">Your Submission</h3>
      <div style="background:#0b0b14;padding:16px;border-radius:10px;">
        <p style="margin:0;white-space:pre-wrap;color:#e6e6e6;line-height:1.6;">{{.Project}}</p>
      </div>
    </div>
    <div style="background:#1c1426;padding:28px;border-radius:14px;margin:0 0 28px 0;border:1px solid #3a2452;">
      <h3 style="color:#a855f7;margin:0 0 20px 0;font-size:16px;">What Happens Next</h3>
      <table style="width:100%;border-collapse:collapse;">
        {{- range $i, $step := .Steps}}
        <tr>
          <td style="padding:10px 0;vertical-align:top;width:40px;">
            <div style="background:#ff7f00;color:#ffffff;width:28px;height:28px;border-radius:50%;text-align:center;line-height:28px;font-weight:bold;font-size:14px;">{{inc $i}}</div>
          </td>
          <td style="padding:10px 0;color:#dcdcdc;font-size:14px;line-height:1.5;">{{$step}}</td>
        </tr>
        {{- end}}
      </table>
    </div>
    <div style="background:#1e1614;padding:24px;border-radius:14px;margin:0 0 28px 0;border-left:4px solid #ff7f00;">
      <h3 style="color:#ff9500;margin:0 0 14px 0;font-size:16px;">Need Immediate Assistance?</h3>
      <p style="color:#dcdcdc;margin:8px 0;"><strong style="color:#ff7f00;">Email:</strong> <a href="mailto:{{.Brand.ContactEmail}}" style="color:#a855f7;text-decoration:none;">{{.Brand.ContactEmail}}</a></p>
      <p style="color:#dcdcdc;margin:8px 0;"><strong style="color:#ff7f00;">Response Time:</strong> {{.Brand.ResponseTime}}</p>
    </div>
    <div style="text-align:center;margin-top:36px;padding-top:28px;border-top:1px solid #2a2a3a;">
      <p style="color:#9a9aa6;margin:0 0 8px 0;font-size:14px;">Best regards,</p>
      <p style="color:#ff7f00;margin:0;font-weight:bold;font-size:18px;">The {{.Brand.Name}} Team</p>
    </div>
  </div>
</div>
</body>
</html>`

const ackTextTemplate = `Hi {{.Name}}!

Thank you for reaching out to {{.Brand.Name}}! We've received your project inquiry and are excited to discuss your vision.

Your submission:
{{.Project}}

What happens next:
{{- range $i, $step := .Steps}}
  {{inc $i}}. {{$step}}
{{- end}}

Need immediate assistance? Email {{.Brand.ContactEmail}} (response time: {{.Brand.ResponseTime}}).

Best regards,
The {{.Brand.Name}} Team
`

var templateFuncs = map[string]any{
	"inc": func(i int) int { return i + 1 },
}

type templateSet struct {
	adminHTML *htmltemplate.Template
	adminText *texttemplate.Template
	ackHTML   *htmltemplate.Template
	ackText   *texttemplate.Template
}

func parseTemplates() (*templateSet, error) {
	adminHTML, err := htmltemplate.New("admin.html").Funcs(templateFuncs).Parse(adminEmailTemplate)
	if err != nil {
		return nil, err
	}
	adminText, err := texttemplate.New("admin.txt").Funcs(templateFuncs).Parse(adminTextTemplate)
	if err != nil {
		return nil, err
	}
	ackHTML, err := htmltemplate.New("ack.html").Funcs(templateFuncs).Parse(ackEmailTemplate)
	if err != nil {
		return nil, err
	}
	ackText, err := texttemplate.New("ack.txt").Funcs(templateFuncs).Parse(ackTextTemplate)
	if err != nil {
		return nil, err
	}
	return &templateSet{adminHTML: adminHTML, adminText: adminText, ackHTML: ackHTML, ackText: ackText}, nil
}
