package delivery

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/aimaverick/clarity/internal/report"
)

const bookingURL = "https://selar.com/366141ux1u"

// RenderLeadEmail builds the personalized report email. The report body is
// embedded verbatim (converted from markdown) between the assessment
// summary and the fixed call-to-action block.
func RenderLeadEmail(lead report.LeadSubmission, focus, reportText string) Email {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">`)
	b.WriteString(`<h1 style="color: #0B1B3A;">Your Strategic AI Clarity Report</h1>`)
	fmt.Fprintf(&b, `<p>Dear %s,</p>`, html.EscapeString(lead.FullName))
	b.WriteString(`<p>Thank you for completing the AI Strategy Assessment. Your personalized Strategic AI Clarity Report is ready!</p>`)
	b.WriteString(`<div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<h3>Your Assessment Summary:</h3><ul>`)
	fmt.Fprintf(&b, `<li><strong>Business Stage:</strong> %s</li>`, html.EscapeString(lead.BusinessStage))
	fmt.Fprintf(&b, `<li><strong>Primary Market:</strong> %s</li>`, html.EscapeString(lead.Country))
	fmt.Fprintf(&b, `<li><strong>Report Focus:</strong> %s</li>`, html.EscapeString(focus))
	b.WriteString(`</ul></div>`)
	b.WriteString(`<h2>Your Complete Report:</h2>`)
	writeReportPanel(&b, reportText)
	writeCTA(&b, "Ready for 1-on-1 Strategic Guidance?",
		"Book a Strategic Clarity Call to discuss your specific implementation:",
		"Book Consultation Now")
	writeSignature(&b)
	b.WriteString(`<hr style="margin: 30px 0;">`)
	b.WriteString(`<p style="font-size: 12px; color: #666;">This report is generated based on your AI Strategy Assessment responses. For personalized implementation guidance, schedule a Strategic Clarity Call.</p>`)
	b.WriteString(`</div>`)

	return Email{
		To:      lead.Email,
		Subject: fmt.Sprintf("Your Strategic AI Clarity Report - %s", lead.FullName),
		HTML:    b.String(),
	}
}

// RenderGenericEmail builds the download-path email around the generic
// report. Nothing is personalized beyond the recipient.
func RenderGenericEmail(to, reportText string) Email {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">`)
	b.WriteString(`<h1 style="color: #0B1B3A;">Your Strategic AI Clarity Report</h1>`)
	b.WriteString(`<p>Thank you for your interest in Strategic AI Clarity! Your report is attached below.</p>`)
	writeReportPanel(&b, reportText)
	writeCTA(&b, "Ready for Personalized AI Strategy?",
		"Get a customized report based on your specific business needs:",
		"Take AI Assessment")
	writeSignature(&b)
	b.WriteString(`</div>`)

	return Email{
		To:      to,
		Subject: "Your Strategic AI Clarity Report",
		HTML:    b.String(),
	}
}

func writeReportPanel(b *strings.Builder, reportText string) {
	b.WriteString(`<div style="background: #fff; border: 1px solid #ddd; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(reportBodyHTML(reportText))
	b.WriteString(`</div>`)
}

func writeCTA(b *strings.Builder, heading, line, label string) {
	b.WriteString(`<div style="background: #C9A44A; color: #0B1B3A; padding: 15px; border-radius: 8px; margin: 20px 0; text-align: center;">`)
	fmt.Fprintf(b, `<h3>%s</h3>`, heading)
	fmt.Fprintf(b, `<p>%s</p>`, line)
	fmt.Fprintf(b, `<a href="%s" style="background: #0B1B3A; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">%s</a>`, bookingURL, label)
	b.WriteString(`</div>`)
}

func writeSignature(b *strings.Builder) {
	b.WriteString(`<p>Best regards,<br><strong>Adenola Adegbesan</strong><br>The AI Maverick - Strategic AI Clarity Coach</p>`)
}

// reportBodyHTML converts the report markdown for embedding. A conversion
// failure falls back to an escaped preformatted block rather than losing
// the report.
func reportBodyHTML(markdown string) string {
	var out strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &out); err != nil {
		return `<pre style="white-space: pre-wrap; font-family: inherit;">` + html.EscapeString(markdown) + `</pre>`
	}
	return out.String()
}
