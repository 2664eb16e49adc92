package service

import (
	"context"

	"ripple/internal/models"
)

type followRepoStub struct {
	createFn          func(context.Context, uint, uint) (bool, error)
	deleteFn          func(context.Context, uint, uint) (bool, error)
	isFollowingFn     func(context.Context, uint, uint) (bool, error)
	getFollowingFn    func(context.Context, uint) ([]models.User, error)
	getFollowersFn    func(context.Context, uint) ([]models.User, error)
	getFollowingIDsFn func(context.Context, uint) ([]uint, error)
	getFollowerIDsFn  func(context.Context, uint) ([]uint, error)
	countFollowingFn  func(context.Context, uint) (int64, error)
	countFollowersFn  func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.createFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFollowingFn(ctx, userID)
}
func (s *followRepoStub) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFollowersFn(ctx, userID)
}
func (s *followRepoStub) GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getFollowingIDsFn(ctx, userID)
}
func (s *followRepoStub) GetFollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getFollowerIDsFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:          func(context.Context, uint, uint) (bool, error) { return true, nil },
		deleteFn:          func(context.Context, uint, uint) (bool, error) { return true, nil },
		isFollowingFn:     func(context.Context, uint, uint) (bool, error) { return false, nil },
		getFollowingFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFollowersFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFollowingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		getFollowerIDsFn:  func(context.Context, uint) ([]uint, error) { return nil, nil },
		countFollowingFn:  func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowersFn:  func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	listFn          func(context.Context, int, int) ([]*models.User, error)
	countFn         func(context.Context) (int64, error)
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(context.Context, *models.User) error { return nil },
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		listFn:          func(context.Context, int, int) ([]*models.User, error) { return nil, nil },
		countFn:         func(context.Context) (int64, error) { return 0, nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
	}
}

type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn    func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listFn           func(context.Context, int, int, uint) ([]*models.Post, error)
	updateFn         func(context.Context, *models.Post) error
	deleteFn         func(context.Context, uint) error
	likeFn           func(context.Context, uint, uint) (bool, error)
	unlikeFn         func(context.Context, uint, uint) (bool, error)
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	feedByAuthorsFn  func(context.Context, []uint, int, int, uint) ([]*models.Post, error)
	countByAuthorsFn func(context.Context, []uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) FeedByAuthors(ctx context.Context, authorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.feedByAuthorsFn(ctx, authorIDs, limit, offset, currentUserID)
}
func (s *postRepoStub) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	return s.countByAuthorsFn(ctx, authorIDs)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:         func(context.Context, *models.Post) error { return nil },
		getByIDFn:        func(context.Context, uint, uint) (*models.Post, error) { return &models.Post{}, nil },
		getByUserIDFn:    func(context.Context, uint, int, int, uint) ([]*models.Post, error) { return nil, nil },
		listFn:           func(context.Context, int, int, uint) ([]*models.Post, error) { return nil, nil },
		updateFn:         func(context.Context, *models.Post) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
		likeFn:           func(context.Context, uint, uint) (bool, error) { return true, nil },
		unlikeFn:         func(context.Context, uint, uint) (bool, error) { return true, nil },
		isLikedFn:        func(context.Context, uint, uint) (bool, error) { return false, nil },
		feedByAuthorsFn:  func(context.Context, []uint, int, int, uint) ([]*models.Post, error) { return nil, nil },
		countByAuthorsFn: func(context.Context, []uint) (int64, error) { return 0, nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint, int, int) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
	updateFn      func(context.Context, *models.Comment) error
	deleteFn      func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(context.Context, *models.Comment) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn:  func(context.Context, uint, int, int) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(context.Context, uint) (int64, error) { return 0, nil },
		updateFn:      func(context.Context, *models.Comment) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
	}
}

type notificationRepoStub struct {
	createFn           func(context.Context, *models.Notification) error
	getByIDFn          func(context.Context, uint) (*models.Notification, error)
	listForRecipientFn func(context.Context, uint, bool, int, int) ([]*models.Notification, error)
	countFn            func(context.Context, uint, bool) (int64, error)
	setReadFn          func(context.Context, uint, bool) (bool, error)
	markAllReadFn      func(context.Context, uint) (int64, error)
	deleteMatchingFn   func(context.Context, uint, uint, string, string, uint) (int64, error)
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notificationRepoStub) ListForRecipient(ctx context.Context, recipientID uint, unreadOnly bool, limit, offset int) ([]*models.Notification, error) {
	return s.listForRecipientFn(ctx, recipientID, unreadOnly, limit, offset)
}
func (s *notificationRepoStub) CountForRecipient(ctx context.Context, recipientID uint, unreadOnly bool) (int64, error) {
	return s.countFn(ctx, recipientID, unreadOnly)
}
func (s *notificationRepoStub) SetRead(ctx context.Context, id uint, read bool) (bool, error) {
	return s.setReadFn(ctx, id, read)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	return s.markAllReadFn(ctx, recipientID)
}
func (s *notificationRepoStub) DeleteMatching(ctx context.Context, recipientID, actorID uint, verb, targetType string, targetID uint) (int64, error) {
	return s.deleteMatchingFn(ctx, recipientID, actorID, verb, targetType, targetID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:  func(context.Context, *models.Notification) error { return nil },
		getByIDFn: func(ctx context.Context, id uint) (*models.Notification, error) { return &models.Notification{ID: id}, nil },
		listForRecipientFn: func(context.Context, uint, bool, int, int) ([]*models.Notification, error) {
			return nil, nil
		},
		countFn:       func(context.Context, uint, bool) (int64, error) { return 0, nil },
		setReadFn:     func(context.Context, uint, bool) (bool, error) { return true, nil },
		markAllReadFn: func(context.Context, uint) (int64, error) { return 0, nil },
		deleteMatchingFn: func(context.Context, uint, uint, string, string, uint) (int64, error) {
			return 0, nil
		},
	}
}

type publisherStub struct {
	published []uint
}

func (p *publisherStub) PublishUser(_ context.Context, userID uint, _ interface{}) {
	p.published = append(p.published, userID)
}

func noopNotificationService() *NotificationService {
	return NewNotificationService(noopNotificationRepo(), noopPostRepo(), noopCommentRepo(), nil)
}
