package main

// @title           Exelo POS API
// @version         1.0
// @description     API do ponto de venda e gestão de comerciantes Exelo

// @contact.name   API Support
// @contact.email  suporte@exelo.com.br

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
