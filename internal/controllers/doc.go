// Package controllers holds the application's MVC controllers.
package controllers
