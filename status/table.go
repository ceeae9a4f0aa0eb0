package status

import "fmt"

// The status codes known to the table.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 7231, 6.2.1
	SwitchingProtocols Code = 101 // RFC 7231, 6.2.2
	Processing         Code = 102 // RFC 2518, 10.1
	EarlyHints         Code = 103 // RFC 8297

	OK                          Code = 200 // RFC 7231, 6.3.1
	Created                     Code = 201 // RFC 7231, 6.3.2
	Accepted                    Code = 202 // RFC 7231, 6.3.3
	NonAuthoritativeInformation Code = 203 // RFC 7231, 6.3.4
	NoContent                   Code = 204 // RFC 7231, 6.3.5
	ResetContent                Code = 205 // RFC 7231, 6.3.6
	PartialContent              Code = 206 // RFC 7233, 4.1
	MultiStatus                 Code = 207 // RFC 4918, 11.1
	AlreadyReported             Code = 208 // RFC 5842, 7.1
	IMUsed                      Code = 226 // RFC 3229, 10.4.1

	MultipleChoices   Code = 300 // RFC 7231, 6.4.1
	MovedPermanently  Code = 301 // RFC 7231, 6.4.2
	Found             Code = 302 // RFC 7231, 6.4.3
	SeeOther          Code = 303 // RFC 7231, 6.4.4
	NotModified       Code = 304 // RFC 7232, 4.1
	UseProxy          Code = 305 // RFC 7231, 6.4.5
	Unused            Code = 306 // RFC 7231, 6.4.6
	TemporaryRedirect Code = 307 // RFC 7231, 6.4.7
	PermanentRedirect Code = 308 // RFC 7538, 3

	BadRequest                  Code = 400 // RFC 7231, 6.5.1
	Unauthorized                Code = 401 // RFC 7235, 3.1
	PaymentRequired             Code = 402 // RFC 7231, 6.5.2
	Forbidden                   Code = 403 // RFC 7231, 6.5.3
	NotFound                    Code = 404 // RFC 7231, 6.5.4
	MethodNotAllowed            Code = 405 // RFC 7231, 6.5.5
	NotAcceptable               Code = 406 // RFC 7231, 6.5.6
	ProxyAuthenticationRequired Code = 407 // RFC 7235, 3.2
	RequestTimeout              Code = 408 // RFC 7231, 6.5.7
	Conflict                    Code = 409 // RFC 7231, 6.5.8
	Gone                        Code = 410 // RFC 7231, 6.5.9
	LengthRequired              Code = 411 // RFC 7231, 6.5.10
	PreconditionFailed          Code = 412 // RFC 7232, 4.2
	PayloadTooLarge             Code = 413 // RFC 7231, 6.5.11
	URITooLong                  Code = 414 // RFC 7231, 6.5.12
	UnsupportedMediaType        Code = 415 // RFC 7231, 6.5.13
	RangeNotSatisfiable         Code = 416 // RFC 7233, 4.4
	ExpectationFailed           Code = 417 // RFC 7231, 6.5.14
	ImATeapot                   Code = 418 // RFC 7168, 2.3.3
	MisdirectedRequest          Code = 421 // RFC 7540, 9.1.2
	UnprocessableEntity         Code = 422 // RFC 4918, 11.2
	Locked                      Code = 423 // RFC 4918, 11.3
	FailedDependency            Code = 424 // RFC 4918, 11.4
	TooEarly                    Code = 425 // RFC 8470, 5.2
	UpgradeRequired             Code = 426 // RFC 7231, 6.5.15
	PreconditionRequired        Code = 428 // RFC 6585, 3
	TooManyRequests             Code = 429 // RFC 6585, 4
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	UnavailableForLegalReasons  Code = 451 // RFC 7725, 3

	InternalServerError           Code = 500 // RFC 7231, 6.6.1
	NotImplemented                Code = 501 // RFC 7231, 6.6.2
	BadGateway                    Code = 502 // RFC 7231, 6.6.3
	ServiceUnavailable            Code = 503 // RFC 7231, 6.6.4
	GatewayTimeout                Code = 504 // RFC 7231, 6.6.5
	HTTPVersionNotSupported       Code = 505 // RFC 7231, 6.6.6
	VariantAlsoNegotiates         Code = 506 // RFC 2295, 8.1
	InsufficientStorage           Code = 507 // RFC 4918, 11.5
	LoopDetected                  Code = 508 // RFC 5842, 7.2
	NotExtended                   Code = 510 // RFC 2774, 7
	NetworkAuthenticationRequired Code = 511 // RFC 6585, 6
)

// entries is kept in ascending code order. Class is filled in by init.
// PAYMENT_REQUIRE and NOT_ACCEPTED are the published identifiers and are kept
// as spelled.
var entries = [...]Entry{
	{Name: "CONTINUE", Code: Continue, Reference: "RFC 7231, 6.2.1",
		Description: "The initial part of the request has been received and not yet rejected; the client ought to continue sending the request."},
	{Name: "SWITCHING_PROTOCOLS", Code: SwitchingProtocols, Reference: "RFC 7231, 6.2.2",
		Description: "The server understands the Upgrade header field and is switching to the protocols it lists."},
	{Name: "PROCESSING", Code: Processing, Reference: "RFC 2518, 10.1",
		Description: "The server has accepted the complete request but has not yet completed it."},
	{Name: "EARLY_HINTS", Code: EarlyHints, Reference: "RFC 8297",
		Description: "Interim response carrying header fields the final response is likely to include."},

	{Name: "OK", Code: OK, Reference: "RFC 7231, 6.3.1",
		Description: "The request has succeeded."},
	{Name: "CREATED", Code: Created, Reference: "RFC 7231, 6.3.2",
		Description: "The request has been fulfilled and has resulted in one or more new resources being created."},
	{Name: "ACCEPTED", Code: Accepted, Reference: "RFC 7231, 6.3.3",
		Description: "The request has been accepted for processing, but the processing has not been completed."},
	{Name: "NON_AUTHORITATIVE_INFORMATION", Code: NonAuthoritativeInformation, Reference: "RFC 7231, 6.3.4",
		Description: "The request was successful but the enclosed payload has been modified by a transforming proxy."},
	{Name: "NO_CONTENT", Code: NoContent, Reference: "RFC 7231, 6.3.5",
		Description: "The server has fulfilled the request and there is no additional content to send in the response payload body."},
	{Name: "RESET_CONTENT", Code: ResetContent, Reference: "RFC 7231, 6.3.6",
		Description: "The server has fulfilled the request and desires that the user agent reset the document view."},
	{Name: "PARTIAL_CONTENT", Code: PartialContent, Reference: "RFC 7233, 4.1",
		Description: "The server is fulfilling a range request by transferring one or more parts of the selected representation."},
	{Name: "MULTI_STATUS", Code: MultiStatus, Reference: "RFC 4918, 11.1",
		Description: "Status for multiple independent operations."},
	{Name: "ALREADY_REPORTED", Code: AlreadyReported, Reference: "RFC 5842, 7.1",
		Description: "Members of a DAV binding have already been enumerated in a preceding part of the multistatus response."},
	{Name: "IM_USED", Code: IMUsed, Reference: "RFC 3229, 10.4.1",
		Description: "The server has fulfilled a GET request and the response is the result of instance-manipulations applied to the current instance."},

	{Name: "MULTIPLE_CHOICES", Code: MultipleChoices, Reference: "RFC 7231, 6.4.1",
		Description: "The target resource has more than one representation, each with its own more specific identifier."},
	{Name: "MOVED_PERMANENTLY", Code: MovedPermanently, Reference: "RFC 7231, 6.4.2",
		Description: "The target resource has been assigned a new permanent URI."},
	{Name: "FOUND", Code: Found, Reference: "RFC 7231, 6.4.3",
		Description: "The target resource resides temporarily under a different URI."},
	{Name: "SEE_OTHER", Code: SeeOther, Reference: "RFC 7231, 6.4.4",
		Description: "The server is redirecting the user agent to a different resource that is intended to provide an indirect response."},
	{Name: "NOT_MODIFIED", Code: NotModified, Reference: "RFC 7232, 4.1",
		Description: "A conditional GET or HEAD request would have resulted in a 200 response if the condition had not evaluated to false."},
	{Name: "USE_PROXY", Code: UseProxy, Reference: "RFC 7231, 6.4.5", Deprecated: true,
		Description: "Defined in a previous version of the specification and now deprecated."},
	{Name: "UNUSED", Code: Unused, Reference: "RFC 7231, 6.4.6", Deprecated: true,
		Description: "Used in a previous version of the specification, no longer used, and the code is reserved."},
	{Name: "TEMPORARY_REDIRECT", Code: TemporaryRedirect, Reference: "RFC 7231, 6.4.7",
		Description: "The target resource resides temporarily under a different URI and the user agent must not change the request method."},
	{Name: "PERMANENT_REDIRECT", Code: PermanentRedirect, Reference: "RFC 7538, 3",
		Description: "The target resource has been assigned a new permanent URI and the user agent must not change the request method."},

	{Name: "BAD_REQUEST", Code: BadRequest, Reference: "RFC 7231, 6.5.1",
		Description: "The server cannot or will not process the request due to something that is perceived to be a client error."},
	{Name: "UNAUTHORIZED", Code: Unauthorized, Reference: "RFC 7235, 3.1",
		Description: "The request has not been applied because it lacks valid authentication credentials for the target resource."},
	{Name: "PAYMENT_REQUIRE", Code: PaymentRequired, Reference: "RFC 7231, 6.5.2",
		Description: "Reserved for future use."},
	{Name: "FORBIDDEN", Code: Forbidden, Reference: "RFC 7231, 6.5.3",
		Description: "The server understood the request but refuses to authorize it."},
	{Name: "NOT_FOUND", Code: NotFound, Reference: "RFC 7231, 6.5.4",
		Description: "The origin server did not find a current representation for the target resource or is not willing to disclose that one exists."},
	{Name: "METHOD_NOT_ALLOWED", Code: MethodNotAllowed, Reference: "RFC 7231, 6.5.5",
		Description: "The method received in the request-line is known by the origin server but not supported by the target resource."},
	{Name: "NOT_ACCEPTED", Code: NotAcceptable, Reference: "RFC 7231, 6.5.6",
		Description: "The target resource does not have a current representation that would be acceptable to the user agent."},
	{Name: "PROXY_AUTHENTICATION_REQUIRED", Code: ProxyAuthenticationRequired, Reference: "RFC 7235, 3.2",
		Description: "The client needs to authenticate itself in order to use a proxy."},
	{Name: "REQUEST_TIMEOUT", Code: RequestTimeout, Reference: "RFC 7231, 6.5.7",
		Description: "The server did not receive a complete request message within the time that it was prepared to wait."},
	{Name: "CONFLICT", Code: Conflict, Reference: "RFC 7231, 6.5.8",
		Description: "The request could not be completed due to a conflict with the current state of the target resource."},
	{Name: "GONE", Code: Gone, Reference: "RFC 7231, 6.5.9",
		Description: "Access to the target resource is no longer available at the origin server and this condition is likely to be permanent."},
	{Name: "LENGTH_REQUIRED", Code: LengthRequired, Reference: "RFC 7231, 6.5.10",
		Description: "The server refuses to accept the request without a defined Content-Length."},
	{Name: "PRECONDITION_FAILED", Code: PreconditionFailed, Reference: "RFC 7232, 4.2",
		Description: "One or more conditions given in the request header fields evaluated to false when tested on the server."},
	{Name: "PAYLOAD_TOO_LARGE", Code: PayloadTooLarge, Reference: "RFC 7231, 6.5.11",
		Description: "The server is refusing to process a request because the request payload is larger than the server is willing or able to process."},
	{Name: "URI_TOO_LONG", Code: URITooLong, Reference: "RFC 7231, 6.5.12",
		Description: "The server is refusing to service the request because the request-target is longer than the server is willing to interpret."},
	{Name: "UNSUPPORTED_MEDIA_TYPE", Code: UnsupportedMediaType, Reference: "RFC 7231, 6.5.13",
		Description: "The origin server is refusing to service the request because the payload is in a format not supported by this method on the target resource."},
	{Name: "RANGE_NOT_SATISFIABLE", Code: RangeNotSatisfiable, Reference: "RFC 7233, 4.4",
		Description: "None of the ranges in the request's Range header field overlap the current extent of the selected resource."},
	{Name: "EXPECTATION_FAILED", Code: ExpectationFailed, Reference: "RFC 7231, 6.5.14",
		Description: "The expectation given in the request's Expect header field could not be met by at least one of the inbound servers."},
	{Name: "IM_A_TEAPOT", Code: ImATeapot, Reference: "RFC 7168, 2.3.3",
		Description: "Any attempt to brew coffee with a teapot should result in this error code."},
	{Name: "MISDIRECTED_REQUEST", Code: MisdirectedRequest, Reference: "RFC 7540, 9.1.2",
		Description: "The request was directed at a server that is not able to produce a response."},
	{Name: "UNPROCESSABLE_ENTITY", Code: UnprocessableEntity, Reference: "RFC 4918, 11.2",
		Description: "The server understands the content type and syntax of the request but was unable to process the contained instructions."},
	{Name: "LOCKED", Code: Locked, Reference: "RFC 4918, 11.3",
		Description: "The source or destination resource of a method is locked."},
	{Name: "FAILED_DEPENDENCY", Code: FailedDependency, Reference: "RFC 4918, 11.4",
		Description: "The method could not be performed on the resource because the requested action depended on another action that failed."},
	{Name: "TOO_EARLY", Code: TooEarly, Reference: "RFC 8470, 5.2",
		Description: "The server is unwilling to risk processing a request that might be replayed."},
	{Name: "UPGRADE_REQUIRED", Code: UpgradeRequired, Reference: "RFC 7231, 6.5.15",
		Description: "The server refuses to perform the request using the current protocol but might be willing to do so after the client upgrades."},
	{Name: "PRECONDITION_REQUIRED", Code: PreconditionRequired, Reference: "RFC 6585, 3",
		Description: "The origin server requires the request to be conditional."},
	{Name: "TOO_MANY_REQUESTS", Code: TooManyRequests, Reference: "RFC 6585, 4",
		Description: "The user has sent too many requests in a given amount of time."},
	{Name: "REQUEST_HEADER_FIELDS_TOO_LARGE", Code: RequestHeaderFieldsTooLarge, Reference: "RFC 6585, 5",
		Description: "The server is unwilling to process the request because its header fields are too large."},
	{Name: "UNAVAILABLE_FOR_LEGAL_REASONS", Code: UnavailableForLegalReasons, Reference: "RFC 7725, 3",
		Description: "The server is denying access to the resource as a consequence of a legal demand."},

	{Name: "INTERNAL_SERVER_ERROR", Code: InternalServerError, Reference: "RFC 7231, 6.6.1",
		Description: "The server encountered an unexpected condition that prevented it from fulfilling the request."},
	{Name: "NOT_IMPLEMENTED", Code: NotImplemented, Reference: "RFC 7231, 6.6.2",
		Description: "The server does not support the functionality required to fulfill the request."},
	{Name: "BAD_GATEWAY", Code: BadGateway, Reference: "RFC 7231, 6.6.3",
		Description: "The server, while acting as a gateway or proxy, received an invalid response from an inbound server."},
	{Name: "SERVICE_UNAVAILABLE", Code: ServiceUnavailable, Reference: "RFC 7231, 6.6.4",
		Description: "The server is currently unable to handle the request due to a temporary overload or scheduled maintenance."},
	{Name: "GATEWAY_TIMEOUT", Code: GatewayTimeout, Reference: "RFC 7231, 6.6.5",
		Description: "The server, while acting as a gateway or proxy, did not receive a timely response from an upstream server."},
	{Name: "HTTP_VERSION_NOT_SUPPORTED", Code: HTTPVersionNotSupported, Reference: "RFC 7231, 6.6.6",
		Description: "The server does not support, or refuses to support, the major version of HTTP that was used in the request message."},
	{Name: "VARIANT_ALSO_NEGOTIATES", Code: VariantAlsoNegotiates, Reference: "RFC 2295, 8.1",
		Description: "The server has an internal configuration error: the chosen variant resource is itself configured to engage in negotiation."},
	{Name: "INSUFFICIENT_STORAGE", Code: InsufficientStorage, Reference: "RFC 4918, 11.5",
		Description: "The server is unable to store the representation needed to complete the request."},
	{Name: "LOOP_DETECTED", Code: LoopDetected, Reference: "RFC 5842, 7.2",
		Description: "The server terminated an operation because it encountered an infinite loop."},
	{Name: "NOT_EXTENDED", Code: NotExtended, Reference: "RFC 2774, 7",
		Description: "The policy for accessing the resource has not been met in the request."},
	{Name: "NETWORK_AUTHENTICATION_REQUIRED", Code: NetworkAuthenticationRequired, Reference: "RFC 6585, 6",
		Description: "The client needs to authenticate to gain network access."},
}

var (
	byName map[string]int
	byCode map[Code]int
)

func init() {
	byName = make(map[string]int, len(entries))
	byCode = make(map[Code]int, len(entries))
	for i := range entries {
		e := &entries[i]
		class, err := Classify(e.Code)
		if err != nil {
			panic(fmt.Sprintf("status: entry %s: %v", e.Name, err))
		}
		e.Class = class
		if _, dup := byName[e.Name]; dup {
			panic("status: duplicate name " + e.Name)
		}
		byName[e.Name] = i
		if _, seen := byCode[e.Code]; !seen {
			byCode[e.Code] = i
		}
	}
}
