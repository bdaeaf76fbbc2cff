// Package commands implementa a CLI filazero:
//
//	filazero api          sobe o backend JSON (PORT, padrão 3001)
//	filazero web          sobe o servidor do frontend (DEV_PORT, padrão 5173)
//	filazero healthcheck  consulta GET /health e sai com código != 0 se falhar
//	filazero version      imprime a versão
//
// Toda a configuração vem de variáveis de ambiente; as flags só controlam
// verbosidade e o alvo do healthcheck.
package commands
