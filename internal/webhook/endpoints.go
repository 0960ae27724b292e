package webhook

// Webhook paths on the automation backend. The opaque identifiers are the
// backend's generated workflow IDs and are part of the wire contract.
const (
	PathLogin    = "/webhook/login"
	PathRegister = "/webhook/19473c7c-99bf-40b4-b2e0-d4c548970872"
	PathUpload   = "/webhook/3262a7a4-87ca-4732-83c7-67d480a02540"
	PathHistory  = "/webhook/historico-documentos"
	PathDocument = "/webhook/nome-documento"
	PathChat     = "/webhook/d3b5253d-4b6f-4344-aa52-75818c088922"
)
