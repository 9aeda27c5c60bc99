package errors

// ErrorCode identifies an application error category in API responses.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK           ErrorCode = 0
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1005

	ErrorCode_MEETING_NOT_FOUND    ErrorCode = 2000
	ErrorCode_TRANSCRIPT_NOT_FOUND ErrorCode = 2001
	ErrorCode_TRANSCRIPT_EMPTY     ErrorCode = 2002
	ErrorCode_NOTE_NOT_FOUND       ErrorCode = 2003
	ErrorCode_SCORE_NOT_FOUND      ErrorCode = 2004

	ErrorCode_ANALYSIS_FAILED       ErrorCode = 3000
	ErrorCode_JOB_NOT_FOUND         ErrorCode = 3001
	ErrorCode_TRANSCRIPTION_FAILED  ErrorCode = 3002
	ErrorCode_SUMMARY_FAILED        ErrorCode = 3003
	ErrorCode_TEMPLATE_UNKNOWN      ErrorCode = 3004
	ErrorCode_SCORING_FAILED        ErrorCode = 3005
	ErrorCode_EXTERNAL_API_FAILED   ErrorCode = 3006
	ErrorCode_CACHE_FAILED          ErrorCode = 3007
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 3008
	ErrorCode_DB_CONNECTION_FAILED  ErrorCode = 3009
	ErrorCode_MISSING_TRANSCRIPT_ID ErrorCode = 3010
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:           "OK",
	ErrorCode_INTERNAL:          "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:  "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:         "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:    "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED: "PERMISSION_DENIED",
	ErrorCode_INVALID_PAYLOAD:   "INVALID_PAYLOAD",

	ErrorCode_MEETING_NOT_FOUND:    "MEETING_NOT_FOUND",
	ErrorCode_TRANSCRIPT_NOT_FOUND: "TRANSCRIPT_NOT_FOUND",
	ErrorCode_TRANSCRIPT_EMPTY:     "TRANSCRIPT_EMPTY",
	ErrorCode_NOTE_NOT_FOUND:       "NOTE_NOT_FOUND",
	ErrorCode_SCORE_NOT_FOUND:      "SCORE_NOT_FOUND",

	ErrorCode_ANALYSIS_FAILED:       "ANALYSIS_FAILED",
	ErrorCode_JOB_NOT_FOUND:         "JOB_NOT_FOUND",
	ErrorCode_TRANSCRIPTION_FAILED:  "TRANSCRIPTION_FAILED",
	ErrorCode_SUMMARY_FAILED:        "SUMMARY_FAILED",
	ErrorCode_TEMPLATE_UNKNOWN:      "TEMPLATE_UNKNOWN",
	ErrorCode_SCORING_FAILED:        "SCORING_FAILED",
	ErrorCode_EXTERNAL_API_FAILED:   "EXTERNAL_API_FAILED",
	ErrorCode_CACHE_FAILED:          "CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:       "DB_QUERY_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:  "DB_CONNECTION_FAILED",
	ErrorCode_MISSING_TRANSCRIPT_ID: "MISSING_TRANSCRIPT_ID",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
