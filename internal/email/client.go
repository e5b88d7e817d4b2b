package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}

	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// ReservaInfo contiene la información de la reserva para el email de confirmación
type ReservaInfo struct {
	ID                string
	ContactoEmail     string
	ContactoNombre    string
	NombreCumpleanero string
	Edad              int
	FechaReserva      string // YYYY-MM-DD
	Hora              string
	NumNinos          int
	EsMatinal         bool
	PrecioTotal       float64
	SenalPagada       float64
	Pendiente         float64
}

// SendReservaConfirmacion envía el correo de confirmación de una reserva de cumpleaños
func (c *Client) SendReservaConfirmacion(reserva ReservaInfo) error {
	subject := fmt.Sprintf("¡Reserva confirmada! Cumple de %s - %s", reserva.NombreCumpleanero, c.fromName)
	htmlBody := generarHTMLConfirmacion(reserva)

	return c.SendEmail(reserva.ContactoEmail, subject, htmlBody)
}

// generarHTMLConfirmacion genera el HTML del correo de confirmación
func generarHTMLConfirmacion(reserva ReservaInfo) string {
	turno := "Tarde"
	if reserva.EsMatinal {
		turno = "Matinal"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Confirmación de Reserva</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
					<tr>
						<td style="background: linear-gradient(135deg, #2e7d32 0%%, #66bb6a 100%%); padding: 40px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 28px;">¡Reserva Confirmada! 🎉</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0; font-size: 16px;">Os esperamos para celebrar el cumple de %s</p>
						</td>
					</tr>

					<tr>
						<td style="padding: 40px 30px;">
							<div style="background-color: #f8f9fa; border-left: 4px solid #2e7d32; padding: 20px; margin-bottom: 30px;">
								<h2 style="margin: 0 0 15px 0; color: #333; font-size: 20px;">Detalles de la Reserva</h2>
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>Cumpleañero/a:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s (%d años)</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Fecha:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Hora:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s (%s)</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Niños:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%d</td>
									</tr>
								</table>
							</div>

							<div style="margin-top: 30px; padding: 20px; background-color: #f8f9fa; border-radius: 8px;">
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>Precio total:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%.2f€</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Señal pagada:</strong></td>
										<td style="padding: 8px 0; text-align: right; color: #28a745;">-%.2f€</td>
									</tr>
									<tr style="border-top: 2px solid #2e7d32;">
										<td style="padding: 15px 0 0 0;"><strong style="font-size: 18px;">Pendiente:</strong></td>
										<td style="padding: 15px 0 0 0; text-align: right;"><strong style="font-size: 24px; color: #2e7d32;">%.2f€</strong></td>
									</tr>
								</table>
							</div>

							<div style="margin-top: 30px; padding: 20px; background-color: #fff3cd; border-radius: 8px; border-left: 4px solid #ffc107;">
								<h4 style="margin: 0 0 10px 0; color: #856404;">Información Importante</h4>
								<ul style="margin: 0; padding-left: 20px; color: #856404;">
									<li>El importe pendiente se abona el día de la fiesta</li>
									<li>Llegad 15 minutos antes de la hora reservada</li>
									<li>Para cancelaciones, contactar con 48 horas de antelación</li>
								</ul>
							</div>
						</td>
					</tr>

					<tr>
						<td style="background-color: #f8f9fa; padding: 30px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0 0 10px 0; color: #666; font-size: 14px;">
								Si tenéis alguna pregunta, no dudéis en contactarnos
							</p>
							<p style="margin: 0; color: #999; font-size: 12px;">
								Este es un correo automático, por favor no responder directamente
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>`,
		reserva.NombreCumpleanero,
		reserva.NombreCumpleanero,
		reserva.Edad,
		reserva.FechaReserva,
		reserva.Hora,
		turno,
		reserva.NumNinos,
		reserva.PrecioTotal,
		reserva.SenalPagada,
		reserva.Pendiente,
	)
}
