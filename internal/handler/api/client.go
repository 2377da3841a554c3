package api

import (
	"net/http"

	reqdto "pro-video-services/internal/handler/dto/request"
	resdto "pro-video-services/internal/handler/dto/response"
	"pro-video-services/internal/handler/httperr"
	"pro-video-services/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clientUseCase usecase.ClientUseCase
}

func NewClientHandler(clientUseCase usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{clientUseCase: clientUseCase}
}

// @Summary List clients
// @Description List clients with project, spend and booking totals
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ClientListEnvelope
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	items, err := h.clientUseCase.ListClients(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, resdto.ClientListEnvelope{
		Success: true,
		Clients: resdto.FromClientSummaries(items),
	})
}

// @Summary Create client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateClientRequest true "Client"
// @Success 200 {object} resdto.ClientEnvelope
// @Failure 400 {object} httperr.Response
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req reqdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}
	profile, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", "")
		return
	}

	created, err := h.clientUseCase.CreateClient(c.Request.Context(), profile)
	if err != nil {
		httperr.Abort(c, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusOK, resdto.ClientEnvelope{
		Success: true,
		Message: "Client created successfully",
		Client:  resdto.FromClient(created),
	})
}

// @Summary Get client
// @Description Client with projects, communications and total spend
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientDetailEnvelope
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}
	detail, err := h.clientUseCase.GetClient(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load client")
		return
	}
	c.JSON(http.StatusOK, resdto.ClientDetailEnvelope{
		Success: true,
		Client:  resdto.FromClientDetail(detail),
	})
}

// @Summary Update client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body reqdto.UpdateClientRequest true "Fields to change"
// @Success 200 {object} resdto.ClientEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}
	patch, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", "")
		return
	}

	updated, err := h.clientUseCase.UpdateClient(c.Request.Context(), id, patch)
	if err != nil {
		httperr.Abort(c, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, resdto.ClientEnvelope{
		Success: true,
		Client:  resdto.FromClient(updated),
	})
}

// @Summary Create project
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body reqdto.CreateProjectRequest true "Project"
// @Success 200 {object} resdto.ProjectEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clients/{id}/projects [post]
func (h *ClientHandler) CreateProject(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}
	var req reqdto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}

	project, err := h.clientUseCase.CreateProject(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusOK, resdto.ProjectEnvelope{
		Success: true,
		Message: "Project created successfully",
		Project: resdto.FromProject(project),
	})
}

// @Summary Generate project video
// @Description Generate a video for a project, merging overrides over the project specs
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param projectId path string true "Project ID"
// @Param request body reqdto.GenerateVideoRequest true "Prompt and overrides"
// @Success 200 {object} resdto.GeneratedVideoEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /clients/{id}/projects/{projectId}/generate-video [post]
func (h *ClientHandler) GenerateVideo(c *gin.Context) {
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Project not found", "")
		return
	}
	var req reqdto.GenerateVideoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", "")
		return
	}
	prompt, override, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", "")
		return
	}

	result, err := h.clientUseCase.GenerateProjectVideo(c.Request.Context(), clientID, projectID, prompt, override)
	if err != nil {
		httperr.Abort(c, err, "Video generation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.GeneratedVideoEnvelope{
		Success:       true,
		Message:       "Video generation started",
		Video:         result.Video,
		EstimatedCost: result.EstimatedCost,
	})
}

// @Summary Log communication
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body reqdto.LogCommunicationRequest true "Communication"
// @Success 200 {object} resdto.CommunicationEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clients/{id}/communications [post]
func (h *ClientHandler) LogCommunication(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}
	var req reqdto.LogCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", "")
		return
	}

	comm, err := h.clientUseCase.LogCommunication(c.Request.Context(), id, draft)
	if err != nil {
		httperr.Abort(c, err, "Failed to log communication")
		return
	}
	c.JSON(http.StatusOK, resdto.CommunicationEnvelope{
		Success:       true,
		Message:       "Communication logged",
		Communication: resdto.FromCommunication(comm),
	})
}

// clientIDParam aborts with 404 when the path id is not a UUID.
func clientIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", "")
		return uuid.Nil, false
	}
	return id, true
}
