package mailer

import (
	"bytes"
	"html/template"

	"storefront-service/src/internal/model"
)

var orderCreatedTmpl = template.Must(template.New("order-created").Parse(`
<h2>New order {{.OrderNumber}}</h2>
<p>{{.CustomerName}} ({{.CustomerPhone}}) — {{.Town}}, {{.Street}}</p>
<p>{{.DeliveryAddress}}</p>
<table border="1" cellpadding="4" cellspacing="0">
	<tr><th>Item</th><th>Restaurant</th><th>Qty</th><th>Price</th></tr>
	{{range .Items}}
	<tr><td>{{.Name}}</td><td>{{.Restaurant}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}} {{$.Currency}}</td></tr>
	{{end}}
</table>
<p>Subtotal: {{.Subtotal}} {{.Currency}}<br>
Delivery: {{.DeliveryFee}} {{.Currency}}<br>
<b>Total: {{.Total}} {{.Currency}}</b></p>
<p>Payment: {{.PaymentMethod}} ({{.PaymentStatus}})</p>
{{if .Notes}}<p>Notes: {{.Notes}}</p>{{end}}
`))

var statusChangedTmpl = template.Must(template.New("status-changed").Parse(`
<h2>Order {{.OrderNumber}}: {{.FromStatus}} &rarr; {{.ToStatus}}</h2>
<p>Customer: {{.CustomerName}} ({{.CustomerPhone}})</p>
<p>Total: {{.Total}} {{.Currency}}</p>
`))

var adminSignupTmpl = template.Must(template.New("admin-signup").Parse(`
<h2>Welcome, {{.FullName}}</h2>
<p>Your back-office account ({{.Email}}) has been created with the {{.Role}} role.</p>
`))

var stalePendingTmpl = template.Must(template.New("stale-pending").Parse(`
<h2>{{len .}} order(s) pending for too long</h2>
<ul>
	{{range .}}<li>{{.OrderNumber}} — {{.CustomerName}}, {{.Total}} {{.Currency}}, created {{.CreatedAt.Format "2006-01-02 15:04"}}</li>{{end}}
</ul>
`))

func RenderOrderCreated(order *model.OrderResponse) (string, error) {
	var buf bytes.Buffer
	if err := orderCreatedTmpl.Execute(&buf, order); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type StatusChangedData struct {
	OrderNumber   string
	FromStatus    string
	ToStatus      string
	CustomerName  string
	CustomerPhone string
	Total         int64
	Currency      string
}

func RenderStatusChanged(data *StatusChangedData) (string, error) {
	var buf bytes.Buffer
	if err := statusChangedTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type AdminSignupData struct {
	FullName string
	Email    string
	Role     string
}

func RenderAdminSignup(data *AdminSignupData) (string, error) {
	var buf bytes.Buffer
	if err := adminSignupTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderStalePending(orders []model.OrderResponse) (string, error) {
	var buf bytes.Buffer
	if err := stalePendingTmpl.Execute(&buf, orders); err != nil {
		return "", err
	}
	return buf.String(), nil
}
