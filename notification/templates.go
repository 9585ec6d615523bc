package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"coworking_market/constants"
)

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

var templateSources = map[string][2]string{
	constants.EVENT_LOCATION_ADDED: {
		`Your location "{{.location.Name}}" has been added`,
		`<p>Hello {{.seller.FirstName}},</p>
<p>Your location <b>{{.location.Name}}</b> at {{.location.Address}} has been submitted and is awaiting review.</p>
<p><a href="{{.linkPortal}}">Open the portal</a></p>
<p style="display:none">{{.adminLink}}</p>`,
	},
	constants.EVENT_LOCATION_DELETED: {
		`Your location "{{.location.Name}}" has been deleted`,
		`<p>Hello {{.seller.FirstName}},</p>
<p>Your location <b>{{.location.Name}}</b> at {{.location.Address}} has been removed together with its workspaces.</p>`,
	},
	constants.EVENT_VIEWING_REQUEST: {
		`New viewing request for {{.location.Name}}`,
		`<p>Hello {{.seller.FirstName}},</p>
<p>{{.buyer.FirstName}} {{.buyer.LastName}} ({{.buyer.Email}}, {{.viewing.Phone}}) asked to view the {{.workspace.WorkspaceInfo}} at <b>{{.location.Name}}</b>
on {{.viewing.StartTime.Format "Monday, 02 January 2006 15:04"}}.</p>
<p><a href="{{.link}}">View the workspace</a> or <a href="{{.linkNotification}}">answer the request</a>.</p>`,
	},
	constants.EVENT_VIEWING_APPROVED: {
		`Your viewing at {{.location.Name}} is confirmed`,
		`<p>Hello {{.buyer.FirstName}},</p>
<p>Your viewing of the {{.workspace.WorkspaceInfo}} at <b>{{.location.Name}}</b>, {{.location.Address}}
on {{.viewing.StartTime.Format "Monday, 02 January 2006 15:04"}} has been accepted.</p>
<p>Show the attached pass at the reception. <a href="{{.link}}">View the workspace</a></p>`,
	},
	constants.EVENT_VIEWING_REMINDER: {
		`Reminder: viewing at {{.location.Name}}`,
		`<p>Hello {{.buyer.FirstName}},</p>
<p>This is a reminder of your viewing of the {{.workspace.WorkspaceInfo}} at <b>{{.location.Name}}</b>, {{.location.Address}}
on {{.viewing.StartTime.Format "Monday, 02 January 2006 15:04"}}.</p>
<p><a href="{{.link}}">View the workspace</a></p>`,
	},
}

func parseTemplates() (map[string]emailTemplate, error) {
	out := make(map[string]emailTemplate, len(templateSources))
	for event, src := range templateSources {
		subject, err := template.New(event + "_subject").Parse(src[0])
		if err != nil {
			return nil, fmt.Errorf("parse %s subject: %w", event, err)
		}
		body, err := template.New(event + "_body").Parse(src[1])
		if err != nil {
			return nil, fmt.Errorf("parse %s body: %w", event, err)
		}
		out[event] = emailTemplate{subject: subject, body: body}
	}
	return out, nil
}

func (t emailTemplate) render(params map[string]any) (string, string, error) {
	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, params); err != nil {
		return "", "", err
	}
	if err := t.body.Execute(&body, params); err != nil {
		return "", "", err
	}
	return subject.String(), body.String(), nil
}
