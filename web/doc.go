// Package web é o servidor do frontend do FilaZero.
//
// Renderiza as páginas com os componentes de ui, publica a configuração em
// /env.json, entrega os cliques em /ui/actions/{nome} e repassa /api/* para o
// backend definido em VITE_API_URL.
package web
