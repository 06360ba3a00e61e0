package i18n

var ALLOW_LANG = map[string]bool{
	"en": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOTFOUND          = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"
	ERROR_UNSUPPORTED       = "error.unsupported.feature"

	ERROR_STORAGE        = "error.storage"
	ERROR_PARSE_DOCUMENT = "error.parse.document"
	ERROR_AI_REQUEST     = "error.ai.request"
	ERROR_AI_FORMAT      = "error.ai.format"
)
