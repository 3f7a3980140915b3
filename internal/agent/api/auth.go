// Методы клиента для эндпоинтов аутентификации: регистрация и вход.
package api

// SignupRequest описывает тело запроса регистрации пользователя.
//
// Поля передаются в JSON формате в эндпоинт /signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Hobbies  string `json:"hobbies"`
}

// SignupResponse описывает ответ сервера при успешной регистрации.
//
// Redirect содержит путь, куда сервер предлагает идти логиниться.
type SignupResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// SignRequest описывает тело запроса входа пользователя.
type SignRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignResponse описывает ответ сервера при успешном входе.
//
// Token используется для авторизации запросов к защищённым эндпоинтам.
// Срок жизни токена — 1 час, после — повторный login.
type SignResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /signup и возвращает SignupResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(name, email, password string, age int, hobbies string) (SignupResponse, error) {
	var resp SignupResponse
	err := c.PostJSON("/signup", SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Age:      age,
		Hobbies:  hobbies,
	}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /sign и возвращает SignResponse с токеном.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (SignResponse, error) {
	var resp SignResponse
	err := c.PostJSON("/sign", SignRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}
