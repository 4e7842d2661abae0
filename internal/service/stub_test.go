package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/pkg/seedfinder"
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

type stubReportRepo struct {
	reports     map[uint64]*model.Report
	nextID      uint64
	recomputed  []time.Time
	updateErr   error
	likesCounts map[uint64]int64
}

func newStubReportRepo(reports ...*model.Report) *stubReportRepo {
	r := &stubReportRepo{reports: map[uint64]*model.Report{}, likesCounts: map[uint64]int64{}}
	for _, rep := range reports {
		r.reports[rep.ID] = rep
		if rep.ID > r.nextID {
			r.nextID = rep.ID
		}
	}
	return r
}

func (r *stubReportRepo) CreateReport(_ context.Context, report *model.Report, _ []uint64) error {
	r.nextID++
	report.ID = r.nextID
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *stubReportRepo) UpdateReport(_ context.Context, report *model.Report, _ []uint64, growDayStart time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if !growDayStart.IsZero() {
		r.recomputed = append(r.recomputed, growDayStart)
	}
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *stubReportRepo) DeleteReport(_ context.Context, id uint64) error {
	delete(r.reports, id)
	return nil
}

func (r *stubReportRepo) GetReport(_ context.Context, id uint64) (*model.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r *stubReportRepo) GetReportByIds(_ context.Context, ids []uint64) ([]*model.Report, error) {
	var res []*model.Report
	for _, id := range ids {
		if rep, ok := r.reports[id]; ok {
			res = append(res, rep)
		}
	}
	return res, nil
}

func (r *stubReportRepo) GetReportsByAuthor(_ context.Context, authorID uint64) ([]*model.Report, error) {
	var res []*model.Report
	for _, rep := range r.reports {
		if rep.AuthorID == authorID {
			res = append(res, rep)
		}
	}
	return res, nil
}

func (r *stubReportRepo) ListReports(_ context.Context, keyword, _ string, _ bool, limit, offset int) ([]*model.Report, int64, error) {
	var res []*model.Report
	for _, rep := range r.reports {
		if keyword == "" || strings.Contains(rep.Title, keyword) {
			res = append(res, rep)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	total := int64(len(res))
	if offset > len(res) {
		offset = len(res)
	}
	res = res[offset:]
	if limit < len(res) {
		res = res[:limit]
	}
	return res, total, nil
}

func (r *stubReportRepo) UpdateLikesCount(_ context.Context, id uint64, count int64) error {
	r.likesCounts[id] = count
	return nil
}

type stubPostRepo struct {
	posts          map[uint64]*model.Post
	nextID         uint64
	likesCounts    map[uint64]int64
	commentsCounts map[uint64]int64
}

func newStubPostRepo(posts ...*model.Post) *stubPostRepo {
	r := &stubPostRepo{
		posts:          map[uint64]*model.Post{},
		likesCounts:    map[uint64]int64{},
		commentsCounts: map[uint64]int64{},
	}
	for _, p := range posts {
		r.posts[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *stubPostRepo) CreatePost(_ context.Context, post *model.Post, images []*model.PostImage) error {
	r.nextID++
	post.ID = r.nextID
	cp := *post
	cp.Images = images
	r.posts[post.ID] = &cp
	return nil
}

func (r *stubPostRepo) UpdatePost(_ context.Context, post *model.Post, images []*model.PostImage) error {
	cp := *post
	cp.Images = images
	r.posts[post.ID] = &cp
	return nil
}

func (r *stubPostRepo) DeletePost(_ context.Context, id uint64) error {
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubPostRepo) GetPostsByReportID(_ context.Context, reportID uint64) ([]*model.Post, error) {
	var res []*model.Post
	for _, p := range r.posts {
		if p.ReportID == reportID {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date.Before(res[j].Date) })
	return res, nil
}

func (r *stubPostRepo) ExistsOnDate(_ context.Context, reportID uint64, date time.Time, excludeID uint64) (bool, error) {
	for _, p := range r.posts {
		if p.ReportID == reportID && p.ID != excludeID && p.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPostRepo) UpdateLikesCount(_ context.Context, id uint64, count int64) error {
	r.likesCounts[id] = count
	return nil
}

func (r *stubPostRepo) UpdateCommentsCount(_ context.Context, id uint64, count int64) error {
	r.commentsCounts[id] = count
	return nil
}

type stubCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newStubCommentRepo(comments ...*model.Comment) *stubCommentRepo {
	r := &stubCommentRepo{comments: map[uint64]*model.Comment{}}
	for _, c := range comments {
		r.comments[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *stubCommentRepo) CreateComment(_ context.Context, c *model.Comment) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *stubCommentRepo) UpdateCommentContent(_ context.Context, id uint64, content string) error {
	r.comments[id].Content = content
	return nil
}

func (r *stubCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	for cid, c := range r.comments {
		if cid == id || c.ParentID == id {
			delete(r.comments, cid)
		}
	}
	return nil
}

func (r *stubCommentRepo) GetCommentByID(_ context.Context, id uint64) (*model.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *stubCommentRepo) GetCommentsByPostID(_ context.Context, postID uint64) ([]*model.Comment, error) {
	var res []*model.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *stubCommentRepo) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	list, _ := r.GetCommentsByPostID(ctx, postID)
	return int64(len(list)), nil
}

type likeKey struct {
	userID   uint64
	itemType string
	itemID   uint64
}

type stubLikeRepo struct {
	likes map[likeKey]*model.Like
}

func newStubLikeRepo() *stubLikeRepo {
	return &stubLikeRepo{likes: map[likeKey]*model.Like{}}
}

func (r *stubLikeRepo) CreateLike(_ context.Context, like *model.Like) error {
	k := likeKey{like.UserID, like.ItemType, like.ItemID}
	if _, ok := r.likes[k]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.likes[k] = like
	return nil
}

func (r *stubLikeRepo) DeleteLike(_ context.Context, userID uint64, itemType string, itemID uint64) (bool, error) {
	k := likeKey{userID, itemType, itemID}
	if _, ok := r.likes[k]; !ok {
		return false, nil
	}
	delete(r.likes, k)
	return true, nil
}

func (r *stubLikeRepo) CheckLikeExists(_ context.Context, userID uint64, itemType string, itemID uint64) (bool, error) {
	_, ok := r.likes[likeKey{userID, itemType, itemID}]
	return ok, nil
}

func (r *stubLikeRepo) GetLikesByItem(_ context.Context, itemType string, itemID uint64) ([]*model.Like, error) {
	var res []*model.Like
	for k, l := range r.likes {
		if k.itemType == itemType && k.itemID == itemID {
			res = append(res, l)
		}
	}
	return res, nil
}

func (r *stubLikeRepo) CountByItem(ctx context.Context, itemType string, itemID uint64) (int64, error) {
	list, _ := r.GetLikesByItem(ctx, itemType, itemID)
	return int64(len(list)), nil
}

type stubUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newStubUserRepo(users ...*model.User) *stubUserRepo {
	r := &stubUserRepo{users: map[uint64]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *stubUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) GetUserByIds(_ context.Context, ids []uint64) ([]*model.User, error) {
	var res []*model.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (r *stubUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) CreateUser(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type stubStrainRepo struct {
	strains map[string]*model.Strain
	nextID  uint64
}

func newStubStrainRepo(strains ...*model.Strain) *stubStrainRepo {
	r := &stubStrainRepo{strains: map[string]*model.Strain{}}
	for _, st := range strains {
		r.strains[st.BreederID+"/"+st.StrainID] = st
		if st.ID > r.nextID {
			r.nextID = st.ID
		}
	}
	return r
}

func (r *stubStrainRepo) GetAllStrains(_ context.Context) ([]*model.Strain, error) {
	var res []*model.Strain
	for _, st := range r.strains {
		res = append(res, st)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (r *stubStrainRepo) GetStrain(_ context.Context, breederID, strainID string) (*model.Strain, error) {
	st, ok := r.strains[breederID+"/"+strainID]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *stubStrainRepo) UpsertStrain(_ context.Context, strain *model.Strain) error {
	key := strain.BreederID + "/" + strain.StrainID
	if old, ok := r.strains[key]; ok {
		strain.ID = old.ID
	} else {
		r.nextID++
		strain.ID = r.nextID
	}
	cp := *strain
	r.strains[key] = &cp
	return nil
}

type stubLookup struct {
	infos map[string]*seedfinder.StrainInfo
	calls int
}

func (l *stubLookup) GetStrainInfo(_ context.Context, breederID, strainID string) (*seedfinder.StrainInfo, error) {
	l.calls++
	info, ok := l.infos[breederID+"/"+strainID]
	if !ok {
		return nil, seedfinder.ErrLookup
	}
	return info, nil
}

type stubCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newStubCache() *stubCache {
	return &stubCache{data: map[string]string{}}
}

func (c *stubCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *stubCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = fmt.Sprint(value)
	return nil
}

func (c *stubCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type stubMedia struct {
	temp      map[string]*dto.MediaTempMetadata
	claimed   []string
	discarded []string
}

func newStubMedia(keys ...string) *stubMedia {
	m := &stubMedia{temp: map[string]*dto.MediaTempMetadata{}}
	for _, k := range keys {
		m.temp[k] = &dto.MediaTempMetadata{MimeType: "image/png", Width: 10, Height: 10}
	}
	return m
}

func (m *stubMedia) Lookup(_ context.Context, key string) (*dto.MediaTempMetadata, error) {
	return m.temp[key], nil
}

func (m *stubMedia) Register(_ context.Context, key string, meta *dto.MediaTempMetadata) error {
	m.temp[key] = meta
	return nil
}

func (m *stubMedia) Claim(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.temp, k)
	}
	m.claimed = append(m.claimed, keys...)
	return nil
}

func (m *stubMedia) Discard(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.temp, k)
	}
	m.discarded = append(m.discarded, keys...)
	return nil
}

func (m *stubMedia) All(_ context.Context) (map[string]*dto.MediaTempMetadata, error) {
	res := make(map[string]*dto.MediaTempMetadata, len(m.temp))
	for k, v := range m.temp {
		res[k] = v
	}
	return res, nil
}

type stubStore struct {
	objects map[string][]byte
}

func newStubStore() *stubStore {
	return &stubStore{objects: map[string][]byte{}}
}

func (s *stubStore) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	s.objects[key] = buf.Bytes()
	return nil
}

func (s *stubStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *stubStore) PublicURL(key string) string {
	return "http://cdn.test/" + key
}

type stubPublisher struct {
	events []*mongo.NotificationModel
}

func (p *stubPublisher) Publish(_ context.Context, n *mongo.NotificationModel) error {
	p.events = append(p.events, n)
	return nil
}

type stubNotificationRepo struct {
	items []*mongo.NotificationModel
}

func (r *stubNotificationRepo) CreateNotification(_ context.Context, msg *mongo.NotificationModel) error {
	r.items = append(r.items, msg)
	return nil
}

func (r *stubNotificationRepo) GetNotificationList(_ context.Context, userID uint64, limit, offset int64) ([]*mongo.NotificationModel, error) {
	var res []*mongo.NotificationModel
	for _, n := range r.items {
		if n.ReceiverID == userID {
			res = append(res, n)
		}
	}
	if offset > int64(len(res)) {
		return nil, nil
	}
	res = res[offset:]
	if limit < int64(len(res)) {
		res = res[:limit]
	}
	return res, nil
}

func (r *stubNotificationRepo) MarkAsRead(_ context.Context, userID uint64, msgID string) error {
	for _, n := range r.items {
		if n.ReceiverID == userID && n.ID.Hex() == msgID {
			n.IsRead = true
			return nil
		}
	}
	return mongo.ErrNotificationNotFound
}

func (r *stubNotificationRepo) MarkAllAsRead(_ context.Context, userID uint64) error {
	for _, n := range r.items {
		if n.ReceiverID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *stubNotificationRepo) GetUnreadCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, n := range r.items {
		if n.ReceiverID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}
