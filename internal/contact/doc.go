// Package contact implements the contact-form pipeline shared by the HTTP
// server and the serverless function:
//
//	decode → Validate → Composer.Compose → DeliveryClient.Send → MapResponse
//
// Service.Handle runs the whole sequence and returns a transport-neutral
// Response (status, headers, JSON body). Adapters only translate their native
// request into a RawSubmission and write the Response back.
//
// # Responses
//
//	validation failure        400 {"error": "Missing required fields" | "Invalid email format"}
//	service not configured    500 {"error": "Email service not configured"}
//	rejection / transport     500 {"error": "Failed to send email", "details": "..."}
//	success                   200 {"success": true, "message": "Email sent successfully!", "id": "..."}
//	anything unexpected       500 {"error": "Failed to send email", "details": "..."}
//
// # HTML escaping
//
// Submitted fields end up inside an HTML email. By default (HTMLEscape) every
// field is escaped before interpolation. HTMLSanitize keeps basic formatting
// tags. HTMLRaw interpolates fields verbatim, which lets a visitor inject
// arbitrary markup into the owner's mailbox; it exists only for deployments
// that relied on the historical behavior.
package contact
