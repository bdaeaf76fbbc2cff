// Package ui contém os componentes de apresentação do FilaZero como
// templ.Component: botões, abas, rodapé e o shell da página.
//
// Componentes não guardam estado. O clique é entregue por htmx: OnClick é o
// nome de uma ação do Registry e o botão faz POST em ActionPrefix/{nome}.
package ui
