package common

// SessionTokenHeaderName is the HTTP header carrying the signed session
// token on authenticated GraphQL requests.
const SessionTokenHeaderName = "X-JWT"
