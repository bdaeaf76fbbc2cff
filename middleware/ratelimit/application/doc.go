// Package application contém os casos de uso de rate limit e limite de
// concorrência: decidir allow/deny, registrar estatística e adquirir vaga com
// timeout. Depende só de domain.
package application
