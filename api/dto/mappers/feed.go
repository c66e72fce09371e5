// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"bingefeed-api/api/dto/responses"
	"bingefeed-api/core/domain"
	"bingefeed-api/core/feed"
	"bingefeed-api/pkg/utils/duration"
)

// ToFeedItemResponse converts a domain MediaItem to a FeedItemResponse DTO
func ToFeedItemResponse(item *domain.MediaItem) responses.FeedItemResponse {
	return responses.FeedItemResponse{
		DisplayKey:           item.DisplayKey,
		ID:                   item.ID,
		Title:                item.Title,
		Description:          item.Description,
		PosterURL:            item.BestPosterURL(),
		ReleaseDate:          item.ReleaseDate,
		FormattedReleaseDate: item.FormattedReleaseDate(),
		Year:                 item.Year,
		Category:             item.Category.String(),
	}
}

// ToFeedItemResponses converts a list of items, preserving order
func ToFeedItemResponses(items []domain.MediaItem) []responses.FeedItemResponse {
	result := make([]responses.FeedItemResponse, 0, len(items))
	for i := range items {
		result = append(result, ToFeedItemResponse(&items[i]))
	}
	return result
}

// ToFeedResponse converts a snapshot to a FeedResponse DTO.
// items is the (possibly filtered and windowed) subset to return; total is its pre-window length.
func ToFeedResponse(state feed.State, items []domain.MediaItem, total int) responses.FeedResponse {
	return responses.FeedResponse{
		Category:       state.Category.String(),
		Phase:          state.Phase.String(),
		Items:          ToFeedItemResponses(items),
		TotalItems:     total,
		NextPage:       state.NextPage,
		Exhausted:      state.Exhausted,
		LoadingInitial: state.LoadingInitial,
		LoadingMore:    state.LoadingMore,
	}
}

// ToStateResponse converts a full snapshot with no filter or window
func ToStateResponse(state feed.State) responses.FeedResponse {
	return ToFeedResponse(state, state.Items, len(state.Items))
}

// ToErrorResponse converts the controller error slot; nil stays nil
func ToErrorResponse(errState *feed.ErrorState) *responses.ErrorResponse {
	if errState == nil {
		return nil
	}

	return &responses.ErrorResponse{
		Category:   errState.Category.String(),
		Kind:       errState.Notice.Kind.String(),
		Title:      errState.Notice.Title,
		Message:    errState.Notice.Message,
		Action:     errState.Notice.Action.String(),
		OccurredAt: errState.OccurredAt,
	}
}

// ToTitleDetailResponse converts a domain TitleDetail to its DTO
func ToTitleDetailResponse(detail *domain.TitleDetail) *responses.TitleDetailResponse {
	if detail == nil {
		return nil
	}

	response := &responses.TitleDetailResponse{
		ID:                   detail.ID,
		Title:                detail.Title,
		OriginalTitle:        detail.OriginalTitle,
		Description:          detail.Description,
		Category:             detail.Category.String(),
		PosterURL:            detail.BestPosterURL(),
		Backdrop:             detail.Backdrop,
		ReleaseDate:          detail.ReleaseDate,
		FormattedReleaseDate: detail.FormattedReleaseDate(),
		Year:                 detail.Year,
		RuntimeMinutes:       detail.RuntimeMinutes,
		Runtime:              duration.FormatRuntime(detail.RuntimeMinutes),
		Genres:               detail.GenreNames,
		UserRating:           detail.UserRating,
		CriticScore:          detail.CriticScore,
		USRating:             detail.USRating,
	}

	if detail.AccentColor != nil {
		response.AccentColor = &responses.ColorResponse{
			R: detail.AccentColor.R,
			G: detail.AccentColor.G,
			B: detail.AccentColor.B,
		}
	}

	return response
}
