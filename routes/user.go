package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/recnet/recnet-be/controllers"
	"github.com/recnet/recnet-be/util"
)

type userRoutes struct {
	users       *controllers.UserController
	communities *controllers.CommunityController
}

func AddUserRoutes(group *gin.RouterGroup, users *controllers.UserController, communities *controllers.CommunityController) {
	routes := userRoutes{users, communities}
	group.POST("/register", util.HandlerWrapper(routes.register, &util.HandlerOpts{}))
	group.POST("/login", util.HandlerWrapper(routes.login, &util.HandlerOpts{}))

	userGroup := group.Group("/users")
	userGroup.GET("/:id", util.HandlerWrapper(routes.getUser, &util.HandlerOpts{}))
	userGroup.GET("/:id/communities", util.HandlerWrapper(routes.getUserCommunities, &util.HandlerOpts{}))
}

func (ur *userRoutes) register(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.RegisterReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	userId, err := ur.users.Register(c, &req)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return gin.H{
		"userId": userId,
	}, nil
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ur *userRoutes) login(c *gin.Context) (interface{}, *util.HTTPError) {
	var req loginReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	user, err := ur.users.Authenticate(c, req.Email, req.Password)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return user, nil
}

func (ur *userRoutes) getUser(c *gin.Context) (interface{}, *util.HTTPError) {
	user, err := ur.users.GetUser(c, c.Param("id"))
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return user, nil
}

func (ur *userRoutes) getUserCommunities(c *gin.Context) (interface{}, *util.HTTPError) {
	communities, err := ur.communities.GetUserCommunities(c, c.Param("id"))
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return communities, nil
}
