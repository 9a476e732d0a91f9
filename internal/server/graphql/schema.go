// Package graphql defines the account API schema and its resolvers.
//
// Resolvers keep two separate error channels: business failures are rendered
// inside the payload as {ok:false, error:<message>}, while authorization
// failures on guarded fields are returned as resolver errors carrying the
// fixed forbidden message.
package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/nubereats/accounts/internal/common"
	"github.com/nubereats/accounts/internal/server/auth"
	"github.com/nubereats/accounts/internal/server/models"
	"github.com/nubereats/accounts/internal/server/services"
)

var roleEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "UserRole",
	Values: graphql.EnumValueConfigMap{
		"Client":   &graphql.EnumValueConfig{Value: string(models.RoleClient)},
		"Owner":    &graphql.EnumValueConfig{Value: string(models.RoleOwner)},
		"Delivery": &graphql.EnumValueConfig{Value: string(models.RoleDelivery)},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).ID, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).Email, nil
			},
		},
		"role": &graphql.Field{
			Type: graphql.NewNonNull(roleEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(*models.User).Role), nil
			},
		},
		"verified": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).Verified, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).UpdatedAt, nil
			},
		},
	},
})

func coreFields() graphql.Fields {
	return graphql.Fields{
		"ok":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"error": &graphql.Field{Type: graphql.String},
	}
}

var createAccountOutput = graphql.NewObject(graphql.ObjectConfig{
	Name:   "CreateAccountOutput",
	Fields: coreFields(),
})

var loginOutput = graphql.NewObject(graphql.ObjectConfig{
	Name: "LoginOutput",
	Fields: func() graphql.Fields {
		f := coreFields()
		f["token"] = &graphql.Field{Type: graphql.String}
		return f
	}(),
})

var seeProfileOutput = graphql.NewObject(graphql.ObjectConfig{
	Name: "SeeProfileOutput",
	Fields: func() graphql.Fields {
		f := coreFields()
		f["user"] = &graphql.Field{Type: userType}
		return f
	}(),
})

var editProfileOutput = graphql.NewObject(graphql.ObjectConfig{
	Name:   "EditProfileOutput",
	Fields: coreFields(),
})

var editPasswordOutput = graphql.NewObject(graphql.ObjectConfig{
	Name:   "EditPasswordOutput",
	Fields: coreFields(),
})

var verifyEmailOutput = graphql.NewObject(graphql.ObjectConfig{
	Name:   "VerifyEmailOutput",
	Fields: coreFields(),
})

var createAccountInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateAccountInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"role":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(roleEnum)},
	},
})

var loginInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var editProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EditProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var editPasswordInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EditPasswordInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var verifyEmailInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "VerifyEmailInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"code": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

func ok() map[string]interface{} {
	return map[string]interface{}{"ok": true}
}

func fail(message string) map[string]interface{} {
	return map[string]interface{}{"ok": false, "error": message}
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	return p.Args["input"].(map[string]interface{})
}

// NewSchema builds the executable account schema on top of the service.
func NewSchema(svc *services.AccountService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hi": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return true, nil
				},
			},
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, authed := auth.ActingUser(p.Context)
					if !authed {
						return nil, errors.New(MsgForbidden)
					}
					return user, nil
				},
			},
			"seeProfile": &graphql.Field{
				Type: graphql.NewNonNull(seeProfileOutput),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, authed := auth.ActingUser(p.Context); !authed {
						return nil, errors.New(MsgForbidden)
					}
					user, err := svc.FindByID(p.Context, int64(p.Args["userId"].(int)))
					if err != nil {
						return fail(MsgUserNotFound), nil
					}
					out := ok()
					out["user"] = user
					return out, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createAccount": &graphql.Field{
				Type: graphql.NewNonNull(createAccountOutput),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createAccountInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := inputArg(p)
					err := svc.CreateAccount(p.Context,
						in["email"].(string), in["password"].(string),
						models.Role(in["role"].(string)))
					switch {
					case err == nil:
						return ok(), nil
					case errors.Is(err, common.ErrDuplicateEmail):
						return fail(MsgEmailInUse), nil
					default:
						return fail(MsgCreateAccountFailed), nil
					}
				},
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(loginOutput),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := inputArg(p)
					token, err := svc.Login(p.Context, in["email"].(string), in["password"].(string))
					switch {
					case err == nil:
						out := ok()
						out["token"] = token
						return out, nil
					case errors.Is(err, common.ErrUserNotFound):
						return fail(MsgUserNotFound), nil
					case errors.Is(err, common.ErrInvalidPassword):
						return fail(MsgInvalidPassword), nil
					default:
						return fail(MsgLoginFailed), nil
					}
				},
			},
			"editProfile": &graphql.Field{
				Type: graphql.NewNonNull(editProfileOutput),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(editProfileInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, authed := auth.ActingUser(p.Context)
					if !authed {
						return nil, errors.New(MsgForbidden)
					}
					// email is optional; omitting it is the same as submitting
					// the current address.
					email, present := inputArg(p)["email"].(string)
					if !present {
						return fail(MsgEmailUnchanged), nil
					}
					err := svc.EditProfile(p.Context, user.ID, email)
					switch {
					case err == nil:
						return ok(), nil
					case errors.Is(err, common.ErrEmailUnchanged):
						return fail(MsgEmailUnchanged), nil
					case errors.Is(err, common.ErrEmailInUse):
						return fail(MsgEmailInUse), nil
					default:
						return fail(MsgEditProfileFailed), nil
					}
				},
			},
			"editPassword": &graphql.Field{
				Type: graphql.NewNonNull(editPasswordOutput),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(editPasswordInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, authed := auth.ActingUser(p.Context)
					if !authed {
						return nil, errors.New(MsgForbidden)
					}
					err := svc.EditPassword(p.Context, user.ID, inputArg(p)["password"].(string))
					switch {
					case err == nil:
						return ok(), nil
					case errors.Is(err, common.ErrPasswordUnchanged):
						return fail(MsgPasswordUnchanged), nil
					default:
						return fail(MsgEditPasswordFailed), nil
					}
				},
			},
			"verifyEmail": &graphql.Field{
				Type: graphql.NewNonNull(verifyEmailOutput),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(verifyEmailInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					err := svc.VerifyEmail(p.Context, inputArg(p)["code"].(string))
					switch {
					case err == nil:
						return ok(), nil
					case errors.Is(err, common.ErrInvalidVerificationCode):
						return fail(MsgInvalidVerificationCode), nil
					default:
						return fail(MsgVerifyEmailFailed), nil
					}
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
