/*
Package portalsdk provides a client SDK for the EduConnect portal API.

# Overview

The portalsdk package implements a typed client for the portal's JSON API.
It provides both unauthenticated operations (via SDKClient) and
authenticated operations (via Session) bound to a bearer session token.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations and creates authenticated sessions
  - Session: Provides authenticated operations using the session token

Create an SDKClient to interact with public endpoints and run the OTP login
flow:

	client := portalsdk.NewSDKClient("https://portal.example.com")

	// Check service health
	health, err := client.Livez(ctx)

	// Request a one-time passcode
	otp, err := client.RequestOtp(ctx, portalsdk.RequestOtpRequest{
		PhoneOrEmail: "0821234567",
	})

	// Exchange the passcode for an authenticated session
	session, verify, err := client.VerifyOtp(ctx, portalsdk.VerifyOtpRequest{
		PhoneOrEmail: "0821234567",
		OtpCode:      otp.DemoOtp,
	})

Use a Session for everything behind login:

	// Who am I?
	me, err := session.CurrentUser(ctx)

	// Configure and save a solution
	created, err := session.CreateSolution(ctx, portalsdk.SolutionRequest{
		SolutionType: "EduStudent",
		Name:         "Res room connectivity",
		Configuration: portalsdk.SolutionConfig{
			Prepaid: "10GB",
		},
		TermMonths: 12,
	})

	// Order it and pay
	order, err := session.CreateOrder(ctx, portalsdk.CreateOrderRequest{
		SolutionID: created.SolutionID,
	})
	err = session.ProcessPayment(ctx, order.OrderID, portalsdk.PaymentRequest{
		PaymentMethod: "card",
	})

A token stored from a previous login can be rehydrated without a fresh OTP:

	session := client.NewSessionFromToken(storedToken)

# Session Organization

Session methods are organized into files based on their purpose:

  - session.go: Session management, KYC submission, dashboard
  - session_solutions.go: Solution configuration operations
  - session_orders.go: Order placement and payment
  - session_admin.go: Admin operations (whitelist, pricing catalog, CSV import/export)

# Error Handling

Every non-2xx response is returned as an *APIError carrying the HTTP status
code, the machine-readable error code and a human-readable message:

	_, err := session.GetSolution(ctx, id)
	var apiErr *portalsdk.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == portalsdk.ErrorCodeNotFound {
			// Unknown or someone else's solution
		}
	}
*/
package portalsdk
