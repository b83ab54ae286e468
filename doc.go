// Package heidelpay is a client SDK for creating payment types with a
// publishable key. Payment types are tokenized references to a payment
// instrument, e.g. a card or a bank account, that the merchant's server later
// charges using their id.
//
// # Setup
//
// Build a [Client] with [Setup]. It checks the key against the backend and
// loads the payment methods enabled for the merchant:
//
//	client, err := heidelpay.Setup(ctx, heidelpay.MustPublicKey("s-pub-..."))
//	if err != nil {
//		// err is a *heidelpay.Error
//	}
//	card, err := client.CreatePaymentCard(ctx, "4539260780952497", "123", "03/30")
//
// Options such as [WithBaseURL], [WithHTTPClient] and [WithLogger] configure
// the default HTTP backend. [WithBackendService] replaces it.
//
// # Errors
//
// Every operation returns a [*Error] whose [ErrorKind] is one of
// [NoInternetConnection], [GeneralProcessingError], [NotAuthorized] or
// [ServerError]. Use errors.Is with the Err* sentinels to branch on the kind.
// Server errors carry [ServerErrorDetails] whose CustomerMessage can be shown
// to the customer.
//
// # Input
//
// The input subpackage formats and validates card numbers, IBANs, CVCs,
// expiry dates and BICs while they are typed.
package heidelpay
