package heidelpay

import "encoding/json"

// ServerErrorRecord is one entry of the "errors" array the backend sends
// when it rejects a request.
type ServerErrorRecord struct {
	Code            string `json:"code"`
	MerchantMessage string `json:"merchantMessage"`
	CustomerMessage string `json:"customerMessage"`
}

// ServerErrorDetails describes why the backend rejected a request. The first
// record sent by the backend becomes the primary one; the rest are listed in
// AdditionalErrorDetails, which is never nested further.
type ServerErrorDetails struct {
	Code            string `json:"code"`
	MerchantMessage string `json:"merchantMessage"`
	// CustomerMessage is localized according to the Accept-Language header
	// and may be shown to the customer.
	CustomerMessage        string               `json:"customerMessage"`
	AdditionalErrorDetails []ServerErrorDetails `json:"additionalErrorDetails,omitempty"`
}

// FromBackendErrors builds details from backend error records. It returns nil
// for an empty list.
func FromBackendErrors(records []ServerErrorRecord) *ServerErrorDetails {
	if len(records) == 0 {
		return nil
	}
	details := detailsFromRecord(records[0])
	for _, record := range records[1:] {
		details.AdditionalErrorDetails = append(details.AdditionalErrorDetails, *detailsFromRecord(record))
	}
	return details
}

func detailsFromRecord(record ServerErrorRecord) *ServerErrorDetails {
	return &ServerErrorDetails{
		Code:            record.Code,
		MerchantMessage: record.MerchantMessage,
		CustomerMessage: record.CustomerMessage,
	}
}

type serverErrorResponse struct {
	URL       string             `json:"url"`
	Timestamp string             `json:"timestamp"`
	Errors    *[]json.RawMessage `json:"errors"`
}

// parseServerErrors reports whether body is an error response, i.e. a JSON
// object with an "errors" array. Entries that are not objects are skipped.
func parseServerErrors(body []byte) ([]ServerErrorRecord, bool) {
	var resp serverErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Errors == nil {
		return nil, false
	}
	records := make([]ServerErrorRecord, 0, len(*resp.Errors))
	for _, raw := range *resp.Errors {
		var record ServerErrorRecord
		if string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, true
}
