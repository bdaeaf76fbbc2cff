// Package api é o backend JSON do FilaZero.
//
// Rotas:
//
//	GET /        status do serviço ({message, environment, timestamp, status})
//	GET /health  health check ({success, message, environment, timestamp, version})
//	GET /stats   contadores do rate limit
//
// Todas respondem JSON. CORS e parsing de corpo JSON são registrados antes das
// rotas; erros (404, 405, 413, 429, 500, 503) seguem o formato ErrorResponse.
package api
